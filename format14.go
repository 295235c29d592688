package cmap

import "encoding/binary"

// variationSelectorRecord is one entry of a format-14 subtable's
// variation-selector array, sorted ascending by selector.
type variationSelectorRecord struct {
	selector         uint32 // 24-bit on the wire
	defaultUVSOff    uint32
	nonDefaultUVSOff uint32
}

func decodeVariationSelectorRecord(b []byte) variationSelectorRecord {
	return variationSelectorRecord{
		selector:         uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		defaultUVSOff:    binary.BigEndian.Uint32(b[3:7]),
		nonDefaultUVSOff: binary.BigEndian.Uint32(b[7:11]),
	}
}

// unicodeRangeRecord is one entry of a Default UVS table: the
// inclusive range [start, start+additionalCount].
type unicodeRangeRecord struct {
	start           uint32 // 24-bit on the wire
	additionalCount uint8
}

func decodeUnicodeRangeRecord(b []byte) unicodeRangeRecord {
	return unicodeRangeRecord{
		start:           uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		additionalCount: b[3],
	}
}

// contains reports whether cp falls in the record's inclusive range.
// The original implementation this format was distilled from has an
// inverted predicate here (start >= cp && cp < end); that is a bug,
// not a wire-format quirk, so it is not reproduced.
func (r unicodeRangeRecord) contains(cp uint32) bool {
	return r.start <= cp && cp <= r.start+uint32(r.additionalCount)
}

// uvsMappingRecord is one entry of a Non-Default UVS table, sorted
// ascending by unicodeValue.
type uvsMappingRecord struct {
	unicodeValue uint32 // 24-bit on the wire
	glyphID      uint16
}

func decodeUVSMappingRecord(b []byte) uvsMappingRecord {
	return uvsMappingRecord{
		unicodeValue: uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		glyphID:      binary.BigEndian.Uint16(b[3:5]),
	}
}

// parseFormat14 resolves a (codepoint, selector) pair within a
// format-14 subtable. Default-UVS is consulted before non-default-UVS,
// matching the OpenType spec's intended precedence.
func (t *Table) parseFormat14(sub []byte, cp, selector uint32) (GlyphID, error) {
	s := NewStream(sub)
	if _, err := s.ReadUint16(); err != nil { // format
		return 0, ErrNoGlyph
	}
	if _, err := s.ReadUint32(); err != nil { // length
		return 0, ErrNoGlyph
	}
	numRecords, err := s.ReadUint32()
	if err != nil {
		return 0, ErrNoGlyph
	}
	records, err := ReadArray(s, numRecords, 11, decodeVariationSelectorRecord)
	if err != nil {
		return 0, ErrNoGlyph
	}

	record, ok := records.BinarySearch(func(r variationSelectorRecord) int {
		switch {
		case r.selector < selector:
			return -1
		case r.selector > selector:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return 0, ErrNoGlyph
	}

	if record.defaultUVSOff != 0 {
		if isDefault, ok := defaultUVSContains(sub, record.defaultUVSOff, cp); ok && isDefault {
			return t.GlyphIndex(rune(cp))
		}
	}

	if record.nonDefaultUVSOff != 0 {
		if gid, ok := nonDefaultUVSLookup(sub, record.nonDefaultUVSOff, cp); ok {
			return gid, nil
		}
	}

	return 0, ErrNoGlyph
}

func defaultUVSContains(sub []byte, offset, cp uint32) (isDefault bool, ok bool) {
	if offset >= uint32(len(sub)) {
		return false, false
	}
	s := NewStream(sub[offset:])
	numRanges, err := s.ReadUint32()
	if err != nil {
		return false, false
	}
	ranges, err := ReadArray(s, numRanges, 4, decodeUnicodeRangeRecord)
	if err != nil {
		return false, false
	}
	idx, found := ranges.LowerBound(func(r unicodeRangeRecord) bool {
		return r.start+uint32(r.additionalCount) < cp
	})
	if !found {
		return false, true
	}
	return ranges.At(idx).contains(cp), true
}

func nonDefaultUVSLookup(sub []byte, offset, cp uint32) (GlyphID, bool) {
	if offset >= uint32(len(sub)) {
		return 0, false
	}
	s := NewStream(sub[offset:])
	numMappings, err := s.ReadUint32()
	if err != nil {
		return 0, false
	}
	mappings, err := ReadArray(s, numMappings, 5, decodeUVSMappingRecord)
	if err != nil {
		return 0, false
	}
	mapping, ok := mappings.BinarySearch(func(m uvsMappingRecord) int {
		switch {
		case m.unicodeValue < cp:
			return -1
		case m.unicodeValue > cp:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return 0, false
	}
	return GlyphID(mapping.glyphID), true
}
