package cmap

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFormat12SequentialCoverage(t *testing.T) {
	sub := buildCoverageGroups(12, [][3]uint32{{0x1F600, 0x1F64F, 200}})
	table, err := Parse(singleSubtableCmap(sub))
	test.Error(t, err)

	gid, err := table.GlyphIndex(0x1F60A)
	test.Error(t, err)
	test.T(t, gid, GlyphID(210))

	if _, err := table.GlyphIndex(0x1F650); err != ErrNoGlyph {
		t.Fatalf("expected ErrNoGlyph one past the group's end, got %v", err)
	}
}

func TestFormat13ConstantMapping(t *testing.T) {
	sub := buildCoverageGroups(13, [][3]uint32{{0x1F600, 0x1F64F, 200}})
	table, err := Parse(singleSubtableCmap(sub))
	test.Error(t, err)

	first, err := table.GlyphIndex(0x1F600)
	test.Error(t, err)
	test.T(t, first, GlyphID(200))

	last, err := table.GlyphIndex(0x1F64F)
	test.Error(t, err)
	test.T(t, last, GlyphID(200))
}

func TestFormat12MultipleGroupsSelectsCorrectOne(t *testing.T) {
	sub := buildCoverageGroups(12, [][3]uint32{
		{0x0041, 0x005A, 10},  // A-Z -> 10..35
		{0x1F600, 0x1F64F, 200},
	})
	table, err := Parse(singleSubtableCmap(sub))
	test.Error(t, err)

	gid, err := table.GlyphIndex('Z')
	test.Error(t, err)
	test.T(t, gid, GlyphID(35))

	gid, err = table.GlyphIndex(0x1F601)
	test.Error(t, err)
	test.T(t, gid, GlyphID(201))
}
