// Package cmap parses the OpenType/TrueType "cmap" table and resolves
// Unicode code points to glyph ids.
//
// The package consumes a borrowed byte slice holding the cmap table
// payload (starting at the cmap header, not the whole font file); it
// never allocates a copy of the input and never writes through it.
// Locating the cmap table inside a complete font file is the caller's
// job — see cmd/cmapdump for a minimal example.
//
// Subtable formats 0, 2, 4, 12, 13 and 14 (Unicode Variation
// Sequences) are understood. Formats 6, 8 and 10 are recognized during
// the directory walk and skipped without failing the lookup.
package cmap
