package cmap

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestStreamSequentialReads(t *testing.T) {
	data := buf{}.u16(0x0102).u32(0x03040506).i16(-1).u24(0xABCDEF).bytes([]byte{0xAA, 0xBB})

	s := NewStream(data)
	u16, err := s.ReadUint16()
	test.Error(t, err)
	test.T(t, u16, uint16(0x0102))

	u32, err := s.ReadUint32()
	test.Error(t, err)
	test.T(t, u32, uint32(0x03040506))

	i16, err := s.ReadInt16()
	test.Error(t, err)
	test.T(t, i16, int16(-1))

	u24, err := s.ReadUint24()
	test.Error(t, err)
	test.T(t, u24, uint32(0xABCDEF))

	test.T(t, s.Remaining(), uint32(2))

	if err := s.Skip(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last, err := s.ReadUint8()
	test.Error(t, err)
	test.T(t, last, uint8(0xBB))
}

func TestStreamReadPastEnd(t *testing.T) {
	s := NewStream([]byte{0x00, 0x01})
	if _, err := s.ReadUint32(); err != ErrReadPastEnd {
		t.Fatalf("expected ErrReadPastEnd, got %v", err)
	}
	// a failed read must not leave the stream able to return garbage
	// from a subsequent smaller read past where the failure occurred.
	if _, err := s.ReadUint16(); err != nil {
		t.Fatalf("cursor should not have moved on failed read: %v", err)
	}
}

func TestStreamReadUint16At(t *testing.T) {
	data := buf{}.u16(0x1111).u16(0x2222).u16(0x3333)
	s := NewStream(data)

	v, err := s.ReadUint16At(2)
	test.Error(t, err)
	test.T(t, v, uint16(0x2222))

	// the positional read must not disturb the sequential cursor.
	test.T(t, s.Offset(), uint32(0))

	if _, err := s.ReadUint16At(5); err != ErrReadPastEnd {
		t.Fatalf("expected ErrReadPastEnd, got %v", err)
	}
}

func TestReadArrayAdvancesCursorPastWholeBlock(t *testing.T) {
	data := buf{}.u16(1).u16(2).u16(3).u16(0xFFFF)
	s := NewStream(data)

	arr, err := ReadArray(s, 3, 2, func(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) })
	test.Error(t, err)
	test.T(t, arr.Len(), 3)
	test.T(t, arr.At(0), uint16(1))
	test.T(t, arr.At(2), uint16(3))

	tail, err := s.ReadUint16()
	test.Error(t, err)
	test.T(t, tail, uint16(0xFFFF))
}
