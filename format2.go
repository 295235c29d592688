package cmap

import "encoding/binary"

// subHeaderRecord is one entry of a format-2 subHeaders array.
type subHeaderRecord struct {
	firstCode     uint16
	entryCount    uint16
	idDelta       int16
	idRangeOffset uint16
}

func decodeSubHeaderRecord(b []byte) subHeaderRecord {
	return subHeaderRecord{
		firstCode:     binary.BigEndian.Uint16(b[0:2]),
		entryCount:    binary.BigEndian.Uint16(b[2:4]),
		idDelta:       int16(binary.BigEndian.Uint16(b[4:6])),
		idRangeOffset: binary.BigEndian.Uint16(b[6:8]),
	}
}

// parseFormat2 parses a format-2 high-byte mapping table, the CJK
// double-byte encoding used by legacy Shift-JIS/Big5/EUC-style
// subtables. Single-byte code points (codepoint < 0xFF) always use
// sub-header 0; double-byte code points select a sub-header via
// subHeaderKeys[highByte].
func parseFormat2(sub []byte, cp uint32) (GlyphID, bool) {
	if cp > 0xFFFF {
		return 0, false
	}

	s := NewStream(sub)
	format, err := s.ReadUint16()
	if err != nil || format != 2 {
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // length
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // language
		return 0, false
	}

	subHeaderKeys, err := ReadArray(s, 256, 2, func(b []byte) uint16 { return binary.BigEndian.Uint16(b) })
	if err != nil {
		return 0, false
	}

	highByte := (cp >> 8) & 0xFF
	lowByte := cp & 0xFF

	var maxKey uint16
	for i := 0; i < subHeaderKeys.Len(); i++ {
		if k := subHeaderKeys.At(i); k > maxKey {
			maxKey = k
		}
	}
	subHeaderCount := uint32(maxKey)/8 + 1

	subHeadersOffset := s.Offset()
	subHeaders, err := ReadArray(s, subHeaderCount, 8, decodeSubHeaderRecord)
	if err != nil {
		return 0, false
	}

	var i int
	if cp < 0xFF {
		i = 0
	} else {
		i = int(subHeaderKeys.At(int(highByte)) / 8)
	}
	if i < 0 || i >= subHeaders.Len() {
		return 0, false
	}
	sh := subHeaders.At(i)

	rangeEnd := uint32(sh.firstCode) + uint32(sh.entryCount)
	if lowByte < uint32(sh.firstCode) || lowByte >= rangeEnd {
		return 0, false
	}

	// idRangeOffset counts bytes past its own field's location in
	// sub-header i; back the cursor up to that field, then apply the
	// wire offset and the in-range index.
	pos := subHeadersOffset + 8*uint32(i+1) - 2 + uint32(sh.idRangeOffset) + (lowByte-uint32(sh.firstCode))*2
	glyph, err := s.ReadUint16At(pos)
	if err != nil || glyph == 0 {
		return 0, false
	}

	sum := int32(glyph) + int32(sh.idDelta)
	return GlyphID(uint16(sum)), true
}
