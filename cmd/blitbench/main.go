// Package main provides a throughput benchmark for the fastmem primitives.
// It measures fill, compare, and copy bandwidth across a configurable set
// of buffer sizes and prints one row per size.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/go-drift/blit/cmd/blitbench/internal/config"
	"github.com/go-drift/blit/pkg/fastmem"
)

func main() {
	dir := flag.String("dir", "", "project directory (defaults to the enclosing module root)")
	flag.Parse()

	root := *dir
	if root == "" {
		found, err := config.FindProjectRoot()
		if err != nil {
			fatalf("resolving project root: %v", err)
		}
		root = found
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		fatalf("loading configuration: %v", err)
	}

	fmt.Printf("blitbench: %s (word size %d, %d iterations per size)\n\n",
		resolved.ModulePath, fastmem.WordSize, resolved.Iterations)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "size\tset\tequal\tcopy")
	for _, size := range resolved.Sizes {
		set, equal, cp := measure(size, resolved.Iterations, resolved.Value)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			formatSize(size), formatRate(size, set), formatRate(size, equal), formatRate(size, cp))
	}
	if err := w.Flush(); err != nil {
		fatalf("writing report: %v", err)
	}
}

// measure times one primitive pass of each kind over a size-byte buffer and
// returns the per-iteration durations.
func measure(size, iterations int, value byte) (set, equal, cp time.Duration) {
	src := make([]byte, size)
	dst := make([]byte, size)
	for i := range src {
		src[i] = byte(i)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fastmem.SetBytes(dst, value)
	}
	set = time.Since(start) / time.Duration(iterations)

	fastmem.CopyBytes(dst, src)
	start = time.Now()
	for i := 0; i < iterations; i++ {
		if !fastmem.EqualBytes(src, dst) {
			fatalf("equal benchmark: buffers diverged at size %d", size)
		}
	}
	equal = time.Since(start) / time.Duration(iterations)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		fastmem.CopyBytes(dst, src)
	}
	cp = time.Since(start) / time.Duration(iterations)

	return set, equal, cp
}

// formatSize renders a byte count with a binary unit suffix.
func formatSize(n int) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMiB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKiB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// formatRate renders throughput for size bytes processed in d.
func formatRate(size int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	mbps := float64(size) / d.Seconds() / (1 << 20)
	return fmt.Sprintf("%.0fMiB/s", mbps)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[blitbench error] "+format+"\n", args...)
	os.Exit(1)
}
