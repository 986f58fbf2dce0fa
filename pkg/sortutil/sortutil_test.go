package sortutil

import (
	"math/rand"
	"sort"
	"testing"
)

// --- Quicksort tests ---

func TestQuicksort_Basic(t *testing.T) {
	cases := [][]int{
		nil,
		{},
		{1},
		{2, 1},
		{3, 1, 2},
		{5, 4, 3, 2, 1},
		{1, 1, 1, 1},
		{4, 2, 4, 2, 4, 2, 9, 0, -3},
	}
	for _, c := range cases {
		in := append([]int(nil), c...)
		Quicksort(in)
		if !IsSorted(in) {
			t.Errorf("Quicksort(%v) = %v, not sorted", c, in)
		}
	}
}

func TestQuicksort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{10, 100, 1000, 10000} {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(n / 2) // Force duplicates.
		}
		want := append([]int(nil), in...)
		sort.Ints(want)

		Quicksort(in)
		for i := range in {
			if in[i] != want[i] {
				t.Fatalf("n=%d: element %d = %d, want %d", n, i, in[i], want[i])
			}
		}
	}
}

func TestQuicksort_AlreadySorted(t *testing.T) {
	in := make([]int, 5000)
	for i := range in {
		in[i] = i
	}
	Quicksort(in)
	if !IsSorted(in) {
		t.Error("sorted input should stay sorted")
	}
}

func TestQuicksort_Reversed(t *testing.T) {
	in := make([]int, 5000)
	for i := range in {
		in[i] = len(in) - i
	}
	Quicksort(in)
	if !IsSorted(in) {
		t.Error("reversed input should end up sorted")
	}
}

func TestQuicksort_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana", "apple"}
	Quicksort(in)
	if !sort.StringsAreSorted(in) {
		t.Errorf("got %v, not sorted", in)
	}
}

// --- QuicksortFunc tests ---

func TestQuicksortFunc_Descending(t *testing.T) {
	in := []int{3, 9, 1, 7, 5}
	QuicksortFunc(in, func(a, b int) int { return b - a })
	for i := 1; i < len(in); i++ {
		if in[i] > in[i-1] {
			t.Fatalf("got %v, not descending", in)
		}
	}
}

type record struct {
	id   int
	name string
}

func TestQuicksortFunc_Struct(t *testing.T) {
	in := []record{{3, "c"}, {1, "a"}, {2, "b"}}
	QuicksortFunc(in, func(a, b record) int { return a.id - b.id })
	for i, want := range []string{"a", "b", "c"} {
		if in[i].name != want {
			t.Errorf("element %d = %q, want %q", i, in[i].name, want)
		}
	}
}
