package fastmem

import "unsafe"

// Set fills the n bytes starting at p with v.
//
// The full range [p, p+n) must be valid writable memory. n may be zero, in
// which case p is never dereferenced.
func Set(p unsafe.Pointer, n uintptr, v byte) {
	// Lead bytes until p is word aligned, so the stores below are aligned.
	for ; n > 0 && uintptr(p)%WordSize != 0; n-- {
		*(*byte)(p) = v
		p = unsafe.Add(p, 1)
	}

	word := repeatByte(v)
	for ; n >= WordSize; n -= WordSize {
		*(*uintptr)(p) = word
		p = unsafe.Add(p, WordSize)
	}

	for ; n > 0; n-- {
		*(*byte)(p) = v
		p = unsafe.Add(p, 1)
	}
}

// SetBytes fills every byte of b with v.
func SetBytes(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	Set(unsafe.Pointer(&b[0]), uintptr(len(b)), v)
}
