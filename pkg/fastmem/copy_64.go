//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || loong64 || wasm

package fastmem

import "unsafe"

// smallCopy moves exactly n (0..16) bytes using the widest moves that cover
// the count on an 8-byte word target.
func smallCopy(dst, src unsafe.Pointer, n uintptr) {
	switch n {
	case 0:
	case 1:
		*(*byte)(dst) = *(*byte)(src)
	case 2:
		*(*uint16)(dst) = *(*uint16)(src)
	case 3:
		*(*uint16)(dst) = *(*uint16)(src)
		*(*byte)(unsafe.Add(dst, 2)) = *(*byte)(unsafe.Add(src, 2))
	case 4:
		*(*uint32)(dst) = *(*uint32)(src)
	case 5:
		*(*uint32)(dst) = *(*uint32)(src)
		*(*byte)(unsafe.Add(dst, 4)) = *(*byte)(unsafe.Add(src, 4))
	case 6:
		*(*uint32)(dst) = *(*uint32)(src)
		*(*uint16)(unsafe.Add(dst, 4)) = *(*uint16)(unsafe.Add(src, 4))
	case 7:
		*(*uint32)(dst) = *(*uint32)(src)
		*(*uint16)(unsafe.Add(dst, 4)) = *(*uint16)(unsafe.Add(src, 4))
		*(*byte)(unsafe.Add(dst, 6)) = *(*byte)(unsafe.Add(src, 6))
	case 8:
		*(*uint64)(dst) = *(*uint64)(src)
	case 9:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*byte)(unsafe.Add(dst, 8)) = *(*byte)(unsafe.Add(src, 8))
	case 10:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint16)(unsafe.Add(dst, 8)) = *(*uint16)(unsafe.Add(src, 8))
	case 11:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint16)(unsafe.Add(dst, 8)) = *(*uint16)(unsafe.Add(src, 8))
		*(*byte)(unsafe.Add(dst, 10)) = *(*byte)(unsafe.Add(src, 10))
	case 12:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint32)(unsafe.Add(dst, 8)) = *(*uint32)(unsafe.Add(src, 8))
	case 13:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint32)(unsafe.Add(dst, 8)) = *(*uint32)(unsafe.Add(src, 8))
		*(*byte)(unsafe.Add(dst, 12)) = *(*byte)(unsafe.Add(src, 12))
	case 14:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint32)(unsafe.Add(dst, 8)) = *(*uint32)(unsafe.Add(src, 8))
		*(*uint16)(unsafe.Add(dst, 12)) = *(*uint16)(unsafe.Add(src, 12))
	case 15:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint32)(unsafe.Add(dst, 8)) = *(*uint32)(unsafe.Add(src, 8))
		*(*uint16)(unsafe.Add(dst, 12)) = *(*uint16)(unsafe.Add(src, 12))
		*(*byte)(unsafe.Add(dst, 14)) = *(*byte)(unsafe.Add(src, 14))
	case 16:
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint64)(unsafe.Add(dst, 8)) = *(*uint64)(unsafe.Add(src, 8))
	}
}

// bulkCopy moves n (> 16) bytes. The destination is first brought to an
// 8-byte boundary by peeling 1, 2, then 4 leading bytes as needed, so every
// store in the block loop is aligned.
func bulkCopy(dst, src unsafe.Pointer, n uintptr) {
	if uintptr(dst)&1 != 0 {
		*(*byte)(dst) = *(*byte)(src)
		dst = unsafe.Add(dst, 1)
		src = unsafe.Add(src, 1)
		n--
	}
	if uintptr(dst)&2 != 0 {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, 2)
		src = unsafe.Add(src, 2)
		n -= 2
	}
	if uintptr(dst)&4 != 0 {
		*(*uint32)(dst) = *(*uint32)(src)
		dst = unsafe.Add(dst, 4)
		src = unsafe.Add(src, 4)
		n -= 4
	}

	for ; n >= 16; n -= 16 {
		*(*uint64)(dst) = *(*uint64)(src)
		*(*uint64)(unsafe.Add(dst, 8)) = *(*uint64)(unsafe.Add(src, 8))
		dst = unsafe.Add(dst, 16)
		src = unsafe.Add(src, 16)
	}

	if n&8 != 0 {
		*(*uint64)(dst) = *(*uint64)(src)
		dst = unsafe.Add(dst, 8)
		src = unsafe.Add(src, 8)
	}
	if n&4 != 0 {
		*(*uint32)(dst) = *(*uint32)(src)
		dst = unsafe.Add(dst, 4)
		src = unsafe.Add(src, 4)
	}
	if n&2 != 0 {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, 2)
		src = unsafe.Add(src, 2)
	}
	if n&1 != 0 {
		*(*byte)(dst) = *(*byte)(src)
	}
}
