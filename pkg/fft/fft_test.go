package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// approxEqual reports whether two complex values agree within tolerance.
func approxEqual(a, b complex128) bool {
	return cmplx.Abs(a-b) < 1e-9
}

func TestTransform_Impulse(t *testing.T) {
	// An impulse transforms to a flat spectrum of ones.
	in := make([]complex128, 8)
	in[0] = 1

	out, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i, v := range out {
		if !approxEqual(v, 1) {
			t.Errorf("bin %d = %v, want 1", i, v)
		}
	}
}

func TestTransform_Constant(t *testing.T) {
	// A constant signal concentrates all energy in bin zero.
	in := make([]complex128, 16)
	for i := range in {
		in[i] = 3
	}

	out, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !approxEqual(out[0], complex(48, 0)) {
		t.Errorf("bin 0 = %v, want 48", out[0])
	}
	for i := 1; i < len(out); i++ {
		if !approxEqual(out[i], 0) {
			t.Errorf("bin %d = %v, want 0", i, out[i])
		}
	}
}

func TestTransform_SineFrequencyBin(t *testing.T) {
	// A pure k=3 cosine peaks in bins 3 and N-3.
	const n = 64
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(math.Cos(2*math.Pi*3*float64(i)/n), 0)
	}

	out, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i, v := range out {
		want := complex(0, 0)
		if i == 3 || i == n-3 {
			want = complex(n/2, 0)
		}
		if !approxEqual(v, want) {
			t.Errorf("bin %d = %v, want %v", i, v, want)
		}
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 4, 64, 1024} {
		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}

		spectrum, err := Transform(in)
		if err != nil {
			t.Fatalf("n=%d Transform: %v", n, err)
		}
		back, err := Inverse(spectrum)
		if err != nil {
			t.Fatalf("n=%d Inverse: %v", n, err)
		}
		for i := range in {
			if !approxEqual(back[i], in[i]) {
				t.Fatalf("n=%d sample %d: round trip %v, want %v", n, i, back[i], in[i])
			}
		}
	}
}

func TestTransform_InputUnmodified(t *testing.T) {
	in := []complex128{1, 2, 3, 4}
	saved := append([]complex128(nil), in...)
	if _, err := Transform(in); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i := range in {
		if in[i] != saved[i] {
			t.Fatalf("input sample %d modified: %v != %v", i, in[i], saved[i])
		}
	}
}

func TestTransform_RejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{3, 5, 6, 7, 100} {
		if _, err := Transform(make([]complex128, n)); err == nil {
			t.Errorf("length %d should be rejected", n)
		}
	}
}

func TestTransformReal_MatchesComplex(t *testing.T) {
	samples := []float64{0.5, -1, 2, 0, 1.5, 3, -2, 1}
	in := make([]complex128, len(samples))
	for i, s := range samples {
		in[i] = complex(s, 0)
	}

	want, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	got, err := TransformReal(samples)
	if err != nil {
		t.Fatalf("TransformReal: %v", err)
	}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("bin %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTransform_EmptyInput(t *testing.T) {
	out, err := Transform(nil)
	if err != nil {
		t.Fatalf("Transform(nil): %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d bins, want 0", len(out))
	}
}
