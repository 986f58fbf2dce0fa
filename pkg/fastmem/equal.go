package fastmem

import "unsafe"

// Equal reports whether the n bytes at a and the n bytes at b are identical.
//
// Both regions must span n valid readable bytes; comparing regions of
// different underlying lengths is a caller contract violation. Identical
// pointers or n == 0 return true without touching memory.
func Equal(a, b unsafe.Pointer, n uintptr) bool {
	if a == b || n == 0 {
		return true
	}

	// Compare 16 words per iteration. Any mismatched pair fails the whole
	// block immediately; loop and bounds overhead amortize over the block.
	for n >= blockBytes {
		if wordAt(a, 0) != wordAt(b, 0) ||
			wordAt(a, 1) != wordAt(b, 1) ||
			wordAt(a, 2) != wordAt(b, 2) ||
			wordAt(a, 3) != wordAt(b, 3) ||
			wordAt(a, 4) != wordAt(b, 4) ||
			wordAt(a, 5) != wordAt(b, 5) ||
			wordAt(a, 6) != wordAt(b, 6) ||
			wordAt(a, 7) != wordAt(b, 7) ||
			wordAt(a, 8) != wordAt(b, 8) ||
			wordAt(a, 9) != wordAt(b, 9) ||
			wordAt(a, 10) != wordAt(b, 10) ||
			wordAt(a, 11) != wordAt(b, 11) ||
			wordAt(a, 12) != wordAt(b, 12) ||
			wordAt(a, 13) != wordAt(b, 13) ||
			wordAt(a, 14) != wordAt(b, 14) ||
			wordAt(a, 15) != wordAt(b, 15) {
			return false
		}
		a = unsafe.Add(a, blockBytes)
		b = unsafe.Add(b, blockBytes)
		n -= blockBytes
	}

	// Fewer than blockBytes remain; walk the tail from the end backward.
	for n > 0 {
		n--
		if *(*byte)(unsafe.Add(a, n)) != *(*byte)(unsafe.Add(b, n)) {
			return false
		}
	}
	return true
}

// EqualBytes reports whether a and b have the same length and identical
// contents.
func EqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return Equal(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(len(a)))
}
