// Package fft provides a radix-2 fast Fourier transform over complex
// samples.
package fft

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"github.com/go-drift/blit/pkg/fastmem"
)

// Transform returns the discrete Fourier transform of samples. The input is
// not modified; its length must be a power of two (zero length included).
func Transform(samples []complex128) ([]complex128, error) {
	out, err := stage(samples)
	if err != nil {
		return nil, err
	}
	transformInPlace(out, false)
	return out, nil
}

// Inverse returns the inverse discrete Fourier transform of spectrum,
// scaled by 1/N. The input is not modified; its length must be a power of
// two.
func Inverse(spectrum []complex128) ([]complex128, error) {
	out, err := stage(spectrum)
	if err != nil {
		return nil, err
	}
	transformInPlace(out, true)
	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// TransformReal converts real samples to complex and returns their
// transform.
func TransformReal(samples []float64) ([]complex128, error) {
	in := make([]complex128, len(samples))
	for i, s := range samples {
		in[i] = complex(s, 0)
	}
	if err := checkLength(len(in)); err != nil {
		return nil, err
	}
	transformInPlace(in, false)
	return in, nil
}

func checkLength(n int) error {
	if n&(n-1) != 0 {
		return fmt.Errorf("fft: length %d is not a power of two", n)
	}
	return nil
}

// stage validates the input length and copies the samples into a fresh
// working buffer with a single bulk byte copy.
func stage(in []complex128) ([]complex128, error) {
	if err := checkLength(len(in)); err != nil {
		return nil, err
	}
	out := make([]complex128, len(in))
	if len(in) > 0 {
		fastmem.Copy(
			unsafe.Pointer(&out[0]),
			unsafe.Pointer(&in[0]),
			uintptr(len(in))*unsafe.Sizeof(in[0]),
		)
	}
	return out, nil
}

// transformInPlace runs an iterative radix-2 Cooley-Tukey transform.
// inverse flips the twiddle direction; scaling is left to the caller.
func transformInPlace(x []complex128, inverse bool) {
	n := len(x)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for size := 2; size <= n; size *= 2 {
		half := size / 2
		step := sign * 2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angle := step * float64(k)
				w := complex(math.Cos(angle), math.Sin(angle))
				even := x[start+k]
				odd := x[start+k+half] * w
				x[start+k] = even + odd
				x[start+k+half] = even - odd
			}
		}
	}
}
