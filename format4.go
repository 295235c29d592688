package cmap

import "encoding/binary"

// parseFormat4 parses a format-4 segment mapping to delta values
// table, the classic BMP-only piecewise-linear cmap layout. Segments
// are sorted ascending by endCode and a sentinel final segment
// [0xFFFF, 0xFFFF] is expected (but not required) by the format.
func parseFormat4(sub []byte, cp uint32) (GlyphID, bool) {
	if cp > 0xFFFF {
		return 0, false
	}
	cp16 := uint16(cp)

	s := NewStream(sub)
	format, err := s.ReadUint16()
	if err != nil || format != 4 {
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // length
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // language
		return 0, false
	}
	segCountX2, err := s.ReadUint16()
	if err != nil {
		return 0, false
	}
	segCount := uint32(segCountX2) / 2
	if segCount == 0 {
		return 0, false
	}
	if err := s.Skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return 0, false
	}

	decodeU16 := func(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
	decodeI16 := func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) }

	endCodes, err := ReadArray(s, segCount, 2, decodeU16)
	if err != nil {
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // reservedPad
		return 0, false
	}
	startCodes, err := ReadArray(s, segCount, 2, decodeU16)
	if err != nil {
		return 0, false
	}
	idDeltas, err := ReadArray(s, segCount, 2, decodeI16)
	if err != nil {
		return 0, false
	}
	idRangeOffsetPos := s.Offset()
	idRangeOffsets, err := ReadArray(s, segCount, 2, decodeU16)
	if err != nil {
		return 0, false
	}

	segIdx, ok := endCodes.LowerBound(func(endCode uint16) bool { return endCode < cp16 })
	if !ok {
		return 0, false
	}

	startCode := startCodes.At(segIdx)
	if startCode > cp16 {
		return 0, false // gap between segments
	}

	delta := idDeltas.At(segIdx)
	rangeOffset := idRangeOffsets.At(segIdx)

	if rangeOffset == 0 {
		sum := int32(cp16) + int32(delta)
		return GlyphID(uint16(sum)), true
	}

	// idRangeOffset reconstructs a pointer into the glyph index array
	// via wrapping 16-bit pointer arithmetic: back up to this
	// segment's own idRangeOffset slot, apply the wire offset, then
	// step to the code point's position within the segment.
	base := uint16(idRangeOffsetPos) + uint16(segIdx)*2
	deltaWords := (cp16 - startCode) * 2
	pos16 := base + deltaWords + rangeOffset

	glyph, err := s.ReadUint16At(uint32(pos16))
	if err != nil || glyph == 0 {
		return 0, false
	}

	sum := int32(glyph) + int32(delta)
	return GlyphID(uint16(sum)), true
}
