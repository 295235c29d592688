package cmap

// LazyArray is a zero-copy, random-access view over n contiguous
// fixed-size wire records. It never allocates: At re-parses the
// i-th record from its byte slice on every call via decode.
type LazyArray[T any] struct {
	buf    []byte
	stride uint32
	decode func([]byte) T
}

// Len returns the number of records in the array.
func (a LazyArray[T]) Len() int {
	if a.stride == 0 {
		return 0
	}
	return len(a.buf) / int(a.stride)
}

// At parses and returns the i-th record. The caller must ensure
// 0 <= i < Len(); At does not bounds-check, matching the other
// record accessors in this package that are only ever called after a
// bounds check or a successful search.
func (a LazyArray[T]) At(i int) T {
	off := uint32(i) * a.stride
	return a.decode(a.buf[off : off+a.stride])
}

// BinarySearch performs a classic binary search over the array using
// cmp, which must return 0 for a match, a negative number if the
// record at i sorts before the target, and a positive number if it
// sorts after. It returns the first matching record, or ok=false if
// none compares equal. The array is assumed sorted ascending by the
// key cmp examines; BinarySearch does not validate this.
func (a LazyArray[T]) BinarySearch(cmp func(T) int) (T, bool) {
	var zero T
	lo, hi := 0, a.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmp(a.At(mid))
		switch {
		case c == 0:
			return a.At(mid), true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return zero, false
}

// LowerBound returns the index of the first record for which less
// reports false (i.e. the first record that is not "less than" the
// target), or ok=false if every record is less than the target. It is
// the building block for the segment search format 4 needs: "first
// endCode[i] >= codepoint" is not an equality search, so it cannot be
// expressed with BinarySearch.
func (a LazyArray[T]) LowerBound(less func(T) bool) (int, bool) {
	lo, hi := 0, a.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		if less(a.At(mid)) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= a.Len() {
		return 0, false
	}
	return lo, true
}
