package cmap

import "encoding/binary"

// GlyphID is a 16-bit index into a font's glyph table. The value 0
// denotes "no glyph id was found here" throughout this package;
// whether 0 is also the font's own .notdef glyph slot is a concern of
// the enclosing font-face object, not of the cmap lookup.
type GlyphID uint16

// Table is a parsed view over the raw bytes of a cmap table. It holds
// only the borrowed input slice; every lookup re-walks the directory
// from scratch, so nothing is cached or mutated between calls and a
// Table is safe for concurrent use by multiple goroutines without
// coordination.
type Table struct {
	data []byte
}

// Parse validates the cmap header (a 16-bit version followed by a
// 16-bit numTables) and returns a Table over data. Parse does not
// validate encoding records or subtables; a malformed subtable is
// discovered, and skipped, lazily at lookup time.
func Parse(data []byte) (*Table, error) {
	s := NewStream(data)
	if _, err := s.ReadUint16(); err != nil { // version, ignored
		return nil, errMalformedTable
	}
	if _, err := s.ReadUint16(); err != nil { // numTables
		return nil, errMalformedTable
	}
	return &Table{data: data}, nil
}

// encodingRecord is one entry of the cmap directory: platform and
// encoding ids are recorded for callers that want to discriminate on
// them, though GlyphIndex itself does not.
type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     uint32
}

// walk reads the cmap header and calls visit once per encoding
// record in file order, stopping early if visit returns true. A
// directory that is truncated mid-record (declares more tables than
// fit in the buffer) simply stops the walk at the last complete
// record; it is not treated as an error.
func (t *Table) walk(visit func(encodingRecord) bool) {
	s := NewStream(t.data)
	if _, err := s.ReadUint16(); err != nil { // version
		return
	}
	numTables, err := s.ReadUint16()
	if err != nil {
		return
	}
	for i := 0; i < int(numTables); i++ {
		platformID, err := s.ReadUint16()
		if err != nil {
			return
		}
		encodingID, err := s.ReadUint16()
		if err != nil {
			return
		}
		offset, err := s.ReadUint32()
		if err != nil {
			return
		}
		if visit(encodingRecord{platformID: platformID, encodingID: encodingID, offset: offset}) {
			return
		}
	}
}

// subtableFormat peeks the 16-bit format code at the start of a
// subtable without constructing a Stream for it; every format parser
// re-reads it anyway as its first field.
func subtableFormat(sub []byte) (uint16, bool) {
	if len(sub) < 2 {
		return 0, false
	}
	return binary.BigEndian.Uint16(sub), true
}

// dispatchSubtable routes a subtable to its format parser. Formats 6,
// 8 and 10 are recognized but not implemented by this core; format 14
// is only reachable through GlyphVariationIndex. Any other code is
// unrecognized and skipped.
func dispatchSubtable(format uint16, sub []byte, cp uint32) (GlyphID, bool) {
	switch format {
	case 0:
		return parseFormat0(sub, cp)
	case 2:
		return parseFormat2(sub, cp)
	case 4:
		return parseFormat4(sub, cp)
	case 12:
		return parseFormat12(sub, cp)
	case 13:
		return parseFormat13(sub, cp)
	default:
		return 0, false
	}
}

// GlyphIndex resolves a code point through every non-UVS subtable in
// file order and returns the first match. It returns ErrNoGlyph if no
// encoding record yields a non-zero glyph id, including when the
// directory is empty or entirely malformed.
func (t *Table) GlyphIndex(cp rune) (GlyphID, error) {
	if cp < 0 {
		return 0, ErrNoGlyph
	}
	u := uint32(cp)

	var result GlyphID
	found := false
	t.walk(func(rec encodingRecord) bool {
		if rec.offset >= uint32(len(t.data)) {
			return false
		}
		sub := t.data[rec.offset:]
		format, ok := subtableFormat(sub)
		if !ok || format == 14 {
			return false
		}
		gid, ok := dispatchSubtable(format, sub, u)
		if !ok || gid == 0 {
			return false
		}
		result, found = gid, true
		return true
	})
	if !found {
		return 0, ErrNoGlyph
	}
	return result, nil
}

// GlyphVariationIndex resolves a (codepoint, variation selector) pair
// through the first format-14 subtable found in the directory. If the
// selector resolves to the default glyph for codepoint, the result is
// obtained by calling GlyphIndex(codepoint) — it is not re-derived
// from the format-14 bytes.
func (t *Table) GlyphVariationIndex(cp, selector rune) (GlyphID, error) {
	if cp < 0 || selector < 0 {
		return 0, ErrNoGlyph
	}

	var sub []byte
	t.walk(func(rec encodingRecord) bool {
		if rec.offset >= uint32(len(t.data)) {
			return false
		}
		candidate := t.data[rec.offset:]
		format, ok := subtableFormat(candidate)
		if !ok || format != 14 {
			return false
		}
		sub = candidate
		return true
	})
	if sub == nil {
		return 0, ErrNoGlyph
	}
	return t.parseFormat14(sub, uint32(cp), uint32(selector))
}
