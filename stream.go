package cmap

import (
	"encoding/binary"

	"github.com/tdewolff/parse/v2"
)

// Stream is a cursor over a borrowed, immutable byte slice. All
// multi-byte values are big-endian. Every read is bounds-checked
// against the remaining unread bytes; a read that would run past the
// end of the buffer returns ErrReadPastEnd and leaves the cursor
// where it was (the length check happens before any byte is consumed,
// so a later, smaller read that fits still succeeds).
//
// Stream builds on parse.BinaryReader for the sequential cursor and
// adds the positional and 24-bit reads the cmap formats need.
type Stream struct {
	r   *parse.BinaryReader
	buf []byte
}

// NewStream returns a Stream positioned at the start of buf.
func NewStream(buf []byte) *Stream {
	return &Stream{r: parse.NewBinaryReader(buf), buf: buf}
}

// Offset returns the current cursor position.
func (s *Stream) Offset() uint32 { return s.r.Pos() }

// Remaining returns the number of unread bytes.
func (s *Stream) Remaining() uint32 { return s.r.Len() }

// ReadUint8 reads one byte and advances the cursor.
func (s *Stream) ReadUint8() (uint8, error) {
	if s.r.Len() < 1 {
		return 0, ErrReadPastEnd
	}
	return s.r.ReadBytes(1)[0], nil
}

// ReadUint16 reads a big-endian uint16 and advances the cursor.
func (s *Stream) ReadUint16() (uint16, error) {
	if s.r.Len() < 2 {
		return 0, ErrReadPastEnd
	}
	return s.r.ReadUint16(), nil
}

// ReadInt16 reads a big-endian int16 and advances the cursor.
func (s *Stream) ReadInt16() (int16, error) {
	if s.r.Len() < 2 {
		return 0, ErrReadPastEnd
	}
	return s.r.ReadInt16(), nil
}

// ReadUint24 reads a big-endian 24-bit unsigned integer (3 bytes,
// most significant first) zero-extended to uint32, and advances the
// cursor.
func (s *Stream) ReadUint24() (uint32, error) {
	if s.r.Len() < 3 {
		return 0, ErrReadPastEnd
	}
	b := s.r.ReadBytes(3)
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// ReadUint32 reads a big-endian uint32 and advances the cursor.
func (s *Stream) ReadUint32() (uint32, error) {
	if s.r.Len() < 4 {
		return 0, ErrReadPastEnd
	}
	return s.r.ReadUint32(), nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (s *Stream) Skip(n uint32) error {
	if s.r.Len() < n {
		return ErrReadPastEnd
	}
	if n != 0 {
		s.r.ReadBytes(n)
	}
	return nil
}

// SkipUint16 advances the cursor by 2 bytes.
func (s *Stream) SkipUint16() error { return s.Skip(2) }

// SkipUint32 advances the cursor by 4 bytes.
func (s *Stream) SkipUint32() error { return s.Skip(4) }

// ReadUint16At reads a big-endian uint16 at the absolute byte offset
// pos in the Stream's underlying buffer without moving the cursor.
// Formats 2 and 4 use this for glyph-index-array lookups whose offset
// is computed arithmetically rather than reached by sequential scan.
func (s *Stream) ReadUint16At(pos uint32) (uint16, error) {
	if uint32(len(s.buf)) < pos || uint32(len(s.buf))-pos < 2 {
		return 0, ErrReadPastEnd
	}
	return binary.BigEndian.Uint16(s.buf[pos:]), nil
}

// ReadArray reads n fixed-size records of byte width stride,
// decoding each lazily with decode, and advances the cursor past the
// whole block. The returned LazyArray borrows directly from the
// Stream's buffer; it performs no further bounds checks of its own
// since the block has already been validated as present in full.
func ReadArray[T any](s *Stream, n uint32, stride uint32, decode func([]byte) T) (LazyArray[T], error) {
	size := n * stride
	if stride != 0 && size/stride != n {
		return LazyArray[T]{}, ErrReadPastEnd // overflow
	}
	if s.r.Len() < size {
		return LazyArray[T]{}, ErrReadPastEnd
	}
	var buf []byte
	if size != 0 {
		buf = s.r.ReadBytes(size)
	}
	return LazyArray[T]{buf: buf, stride: stride, decode: decode}, nil
}
