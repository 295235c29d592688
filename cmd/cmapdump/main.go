// Command cmapdump prints the glyph id a font's cmap table resolves
// for each code point given on the command line. It is a thin,
// read-only demonstration of the cmap package — it never writes a
// font file and never touches glyf/CFF data.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glyphcore/cmap"
	"github.com/tdewolff/argp"
)

func main() {
	os.Exit(run())
}

func run() int {
	var input string
	var codepoints []string
	var selector string

	cmd := argp.New("Look up glyph ids in a font's cmap table")
	cmd.AddOpt(argp.Append{&codepoints}, "c", "codepoint", "Code point to resolve, in hex (eg. 41 for 'A'); repeatable.")
	cmd.AddOpt(&selector, "s", "selector", "Variation selector in hex; if set, every codepoint is looked up via GlyphVariationIndex instead of GlyphIndex.")
	cmd.AddArg(&input, "input", "Font file (TTF/OTF, not a webfont container).")
	cmd.Parse()

	Error := func(format string, args ...interface{}) int {
		fmt.Fprintf(os.Stderr, "cmapdump: "+format+"\n", args...)
		return 1
	}

	b, err := os.ReadFile(input)
	if err != nil {
		return Error("%v", err)
	}

	cmapData, err := findCmapTable(b)
	if err != nil {
		return Error("%v", err)
	}

	table, err := cmap.Parse(cmapData)
	if err != nil {
		return Error("%v", err)
	}

	var sel rune
	if selector != "" {
		v, err := strconv.ParseInt(strings.TrimPrefix(selector, "U+"), 16, 32)
		if err != nil {
			return Error("invalid selector %q: %v", selector, err)
		}
		sel = rune(v)
	}

	for _, raw := range codepoints {
		v, err := strconv.ParseInt(strings.TrimPrefix(raw, "U+"), 16, 32)
		if err != nil {
			fmt.Printf("U+%s: invalid code point: %v\n", raw, err)
			continue
		}
		cp := rune(v)

		var gid cmap.GlyphID
		if selector != "" {
			gid, err = table.GlyphVariationIndex(cp, sel)
		} else {
			gid, err = table.GlyphIndex(cp)
		}
		if err != nil {
			fmt.Printf("U+%04X: %v\n", cp, err)
			continue
		}
		fmt.Printf("U+%04X: glyph %d\n", cp, gid)
	}
	return 0
}
