// Package fastmem provides raw memory primitives: constant fill, byte-exact
// comparison, and non-overlapping copy over caller-owned regions.
//
// A region is a (pointer, length) pair. The primitives never allocate, never
// retain a region past the call, and never validate their inputs: passing an
// invalid pointer, a length that exceeds the underlying buffer, overlapping
// copy regions, or comparison regions of different lengths is undefined
// behavior. Callers that want bounds or overlap checking must validate before
// calling (see pixbuf for an example of such a caller).
//
// # Performance Model
//
// All three primitives work a native machine word at a time rather than a
// byte at a time. WordSize (4 or 8) selects between two statically compiled
// strategies; the small-copy dispatch table and the bulk-copy inner loop are
// chosen per word width at build time, not at run time.
//
//   - Set stores a repeated-byte word across the region with a byte tail.
//   - Equal compares 16 words per iteration, short-circuiting on the first
//     mismatched pair, then finishes the sub-block tail bytewise.
//   - Copy dispatches lengths 0-16 through fully unrolled move sequences,
//     and for longer regions aligns the destination to a word boundary
//     before moving 16-byte blocks.
//
// # Concurrency
//
// The primitives are pure and hold no state. Concurrent calls on disjoint
// regions need no synchronization; concurrent writes to overlapping
// destinations are a data race and out of contract.
//
// # Slice Adapters
//
// SetBytes, EqualBytes, and CopyBytes adapt the pointer-level primitives to
// byte slices for ordinary Go callers. They derive the region from the slice
// header and inherit the same non-overlap contract for copies.
package fastmem
