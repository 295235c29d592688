package cmap

// parseFormat0 parses a format-0 byte encoding table: a 256-entry
// dense array of glyph ids indexed directly by code point, covering
// U+0000..U+00FF only.
func parseFormat0(sub []byte, cp uint32) (GlyphID, bool) {
	s := NewStream(sub)
	format, err := s.ReadUint16()
	if err != nil || format != 0 {
		return 0, false
	}
	length, err := s.ReadUint16()
	if err != nil {
		return 0, false
	}
	if err := s.SkipUint16(); err != nil { // language
		return 0, false
	}
	if cp >= uint32(length) || cp >= 256 {
		return 0, false
	}
	glyphIDs, err := ReadArray(s, 256, 1, func(b []byte) byte { return b[0] })
	if err != nil {
		return 0, false
	}
	gid := glyphIDs.At(int(cp))
	if gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}
