package cmap

import "encoding/binary"

// sequentialMapGroup is one entry of a format-12/13 groups array. The
// range is stored as given on the wire (endChar inclusive); callers
// compare inclusively rather than widening it to a half-open range,
// since that widening is only useful for the binary-search comparator
// below.
type sequentialMapGroup struct {
	startChar    uint32
	endChar      uint32
	startGlyphID uint32
}

func decodeSequentialMapGroup(b []byte) sequentialMapGroup {
	return sequentialMapGroup{
		startChar:    binary.BigEndian.Uint32(b[0:4]),
		endChar:      binary.BigEndian.Uint32(b[4:8]),
		startGlyphID: binary.BigEndian.Uint32(b[8:12]),
	}
}

func readGroups(sub []byte, wantFormat uint16) (LazyArray[sequentialMapGroup], bool) {
	s := NewStream(sub)
	format, err := s.ReadUint16()
	if err != nil || format != wantFormat {
		return LazyArray[sequentialMapGroup]{}, false
	}
	if err := s.SkipUint16(); err != nil { // reserved
		return LazyArray[sequentialMapGroup]{}, false
	}
	if err := s.SkipUint32(); err != nil { // length
		return LazyArray[sequentialMapGroup]{}, false
	}
	if err := s.SkipUint32(); err != nil { // language
		return LazyArray[sequentialMapGroup]{}, false
	}
	numGroups, err := s.ReadUint32()
	if err != nil {
		return LazyArray[sequentialMapGroup]{}, false
	}
	groups, err := ReadArray(s, numGroups, 12, decodeSequentialMapGroup)
	if err != nil {
		return LazyArray[sequentialMapGroup]{}, false
	}
	return groups, true
}

func findGroup(groups LazyArray[sequentialMapGroup], cp uint32) (sequentialMapGroup, bool) {
	idx, ok := groups.LowerBound(func(g sequentialMapGroup) bool { return g.endChar < cp })
	if !ok {
		return sequentialMapGroup{}, false
	}
	g := groups.At(idx)
	if cp < g.startChar || cp > g.endChar {
		return sequentialMapGroup{}, false
	}
	return g, true
}

// parseFormat12 parses a format-12 segmented coverage table: groups
// of consecutive code points mapping to consecutive glyph ids.
func parseFormat12(sub []byte, cp uint32) (GlyphID, bool) {
	groups, ok := readGroups(sub, 12)
	if !ok {
		return 0, false
	}
	g, ok := findGroup(groups, cp)
	if !ok {
		return 0, false
	}
	return GlyphID(uint16(g.startGlyphID + (cp - g.startChar))), true
}

// parseFormat13 parses a format-13 many-to-one range mapping table:
// every code point in a group maps to the same glyph id.
func parseFormat13(sub []byte, cp uint32) (GlyphID, bool) {
	groups, ok := readGroups(sub, 13)
	if !ok {
		return 0, false
	}
	g, ok := findGroup(groups, cp)
	if !ok {
		return 0, false
	}
	return GlyphID(uint16(g.startGlyphID)), true
}
