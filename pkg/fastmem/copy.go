package fastmem

import "unsafe"

// smallMax is the largest length handled by the unrolled dispatch table.
const smallMax = 16

// Copy copies exactly n bytes from src to dst.
//
// The regions must not overlap; behavior under overlap is undefined. Both
// regions must span n valid bytes. n may be zero, in which case neither
// pointer is dereferenced.
//
// Lengths up to 16 go through a fixed dispatch table of fully unrolled move
// sequences. Longer copies align the destination to a word boundary, move
// 16-byte blocks, then consume the 8/4/2/1 bits of the remaining length.
func Copy(dst, src unsafe.Pointer, n uintptr) {
	if n <= smallMax {
		smallCopy(dst, src, n)
		return
	}
	bulkCopy(dst, src, n)
}

// CopyBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes copied. The slices must not overlap.
func CopyBytes(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	Copy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
	return n
}
