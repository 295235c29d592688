package cmap

import "encoding/binary"

// buf is a tiny byte-buffer builder used across tests to construct
// synthetic cmap tables and subtables by hand, the way the test
// scenarios in this package's design are specified: bit-exact wire
// layouts, not round-tripped through a writer.
type buf []byte

func (b buf) u8(v uint8) buf   { return append(b, v) }
func (b buf) u16(v uint16) buf { return binary.BigEndian.AppendUint16(b, v) }
func (b buf) i16(v int16) buf  { return binary.BigEndian.AppendUint16(b, uint16(v)) }
func (b buf) u32(v uint32) buf { return binary.BigEndian.AppendUint32(b, v) }

// u24 appends the 3 most-significant bytes of v, big-endian.
func (b buf) u24(v uint32) buf {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}

func (b buf) bytes(v []byte) buf { return append(b, v...) }

// zeros appends n zero bytes.
func (b buf) zeros(n int) buf {
	return append(b, make([]byte, n)...)
}

// cmapHeader builds a cmap directory with a single encoding record
// (platform 3, encoding 1) pointing at subtableOffset.
func cmapHeader(subtableOffset uint32) buf {
	b := buf{}
	b = b.u16(0) // version
	b = b.u16(1) // numTables
	b = b.u16(3) // platformID
	b = b.u16(1) // encodingID
	b = b.u32(subtableOffset)
	return b
}

// singleSubtableCmap builds a complete one-record cmap table wrapping
// sub as its only subtable.
func singleSubtableCmap(sub buf) buf {
	const headerLen = 2 + 2 + 8 // version, numTables, one 8-byte record
	return cmapHeader(headerLen).bytes(sub)
}

// buildFormat4 assembles a format-4 subtable from already-resolved
// segment arrays; idRangeOffsets must be computed by the caller using
// the same wrapping formula the parser uses, since this builder does
// not try to reverse-engineer it.
func buildFormat4(endCodes, startCodes []uint16, idDeltas []int16, idRangeOffsets []uint16, glyphArray []uint16) buf {
	segCount := len(endCodes)
	b := buf{}.u16(4).u16(0).u16(0) // format, length (fixed up below), language
	b = b.u16(uint16(segCount * 2))
	b = b.u16(0).u16(0).u16(0) // searchRange, entrySelector, rangeShift
	for _, v := range endCodes {
		b = b.u16(v)
	}
	b = b.u16(0) // reservedPad
	for _, v := range startCodes {
		b = b.u16(v)
	}
	for _, v := range idDeltas {
		b = b.i16(v)
	}
	for _, v := range idRangeOffsets {
		b = b.u16(v)
	}
	for _, v := range glyphArray {
		b = b.u16(v)
	}
	binary.BigEndian.PutUint16(b[2:4], uint16(len(b)))
	return b
}

// buildCoverageGroups assembles a format-12/13 subtable from a list of
// (startChar, endChar, startGlyphID) groups.
func buildCoverageGroups(format uint16, groups [][3]uint32) buf {
	b := buf{}.u16(format).u16(0).u32(0).u32(0) // format, reserved, length placeholder, language
	b = b.u32(uint32(len(groups)))
	for _, g := range groups {
		b = b.u32(g[0]).u32(g[1]).u32(g[2])
	}
	binary.BigEndian.PutUint32(b[4:8], uint32(len(b)))
	return b
}
