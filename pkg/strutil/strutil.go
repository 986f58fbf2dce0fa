// Package strutil provides string trimming, deduplication, and distance
// helpers for text handling.
package strutil

import (
	"strings"
	"unicode"
	"unsafe"

	"github.com/go-drift/blit/pkg/fastmem"
)

// FastEqual reports whether two strings have identical bytes. Equal lengths
// short-circuit through a word-wide comparison instead of a byte loop.
func FastEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return fastmem.Equal(
		unsafe.Pointer(unsafe.StringData(a)),
		unsafe.Pointer(unsafe.StringData(b)),
		uintptr(len(a)),
	)
}

// CollapseWhitespace trims leading and trailing whitespace and replaces every
// interior run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			sb.WriteByte(' ')
			inRun = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DedupAdjacent returns values with runs of equal adjacent strings collapsed
// to a single occurrence. The input is not modified; the result preserves
// first-occurrence order.
func DedupAdjacent(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	out = append(out, values[0])
	for _, v := range values[1:] {
		if !FastEqual(v, out[len(out)-1]) {
			out = append(out, v)
		}
	}
	return out
}

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-character insertions, deletions, and substitutions that turn a
// into b. Distance is computed over bytes.
func Levenshtein(a, b string) int {
	if FastEqual(a, b) {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two-row dynamic program; prev[j] is the distance between a[:i] and b[:j].
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
