package fastmem

import "unsafe"

// WordSize is the native word width of the target platform in bytes:
// 8 on 64-bit targets, 4 on 32-bit targets.
const WordSize = 4 << (^uintptr(0) >> 63)

// blockWords is the number of words compared per Equal iteration.
const blockWords = 16

// blockBytes is the byte span of one Equal block.
const blockBytes = blockWords * WordSize

// repeatByte spreads v into every byte of a machine word.
func repeatByte(v byte) uintptr {
	w := uintptr(v)
	w |= w << 8
	w |= w << 16
	if WordSize == 8 {
		w |= w << 32
	}
	return w
}

// wordAt loads the i-th word starting at p. The load may be unaligned; all
// supported targets tolerate unaligned word access.
func wordAt(p unsafe.Pointer, i uintptr) uintptr {
	return *(*uintptr)(unsafe.Add(p, i*WordSize))
}
