package strutil

import (
	"reflect"
	"strings"
	"testing"
)

// --- FastEqual tests ---

func TestFastEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"a", "a", true},
		{"a", "b", false},
		{"abc", "abcd", false},
		{strings.Repeat("x", 500), strings.Repeat("x", 500), true},
		{strings.Repeat("x", 500), strings.Repeat("x", 499) + "y", false},
	}
	for _, c := range cases {
		if got := FastEqual(c.a, c.b); got != c.want {
			t.Errorf("FastEqual(%.10q..., %.10q...) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

// --- CollapseWhitespace tests ---

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{"  hello  world  ", "hello world"},
		{"a\t\n b\t\tc", "a b c"},
	}
	for _, c := range cases {
		if got := CollapseWhitespace(c.in); got != c.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// --- DedupAdjacent tests ---

func TestDedupAdjacent(t *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{nil, nil},
		{[]string{"a"}, []string{"a"}},
		{[]string{"a", "a", "a"}, []string{"a"}},
		{[]string{"a", "b", "b", "a"}, []string{"a", "b", "a"}},
	}
	for _, c := range cases {
		if got := DedupAdjacent(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("DedupAdjacent(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

// --- Levenshtein tests ---

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"gumbo", "gambol", 2},
	}
	for _, c := range cases {
		if got := Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Levenshtein(c.b, c.a); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d (distance is symmetric)", c.b, c.a, got, c.want)
		}
	}
}
