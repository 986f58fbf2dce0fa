// Package pixbuf provides an RGBA pixel buffer backed by the fastmem
// primitives, with explicit disposal.
//
// A Buffer owns a contiguous RGBA byte slice, four bytes per pixel. Fills
// and blits validate their own bounds and then delegate the raw byte work
// to fastmem, which trusts its inputs. Dispose releases the storage; every
// operation on a disposed buffer fails with ErrDisposed instead of touching
// freed memory.
package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/blit/pkg/fastmem"
)

// bytesPerPixel is the RGBA pixel stride.
const bytesPerPixel = 4

// ErrDisposed is returned by operations on a buffer after Dispose.
var ErrDisposed = errors.New("pixbuf: buffer disposed")

// ErrSharedStorage is returned by Blit when source and destination are the
// same buffer; the underlying copy requires disjoint regions.
var ErrSharedStorage = errors.New("pixbuf: blit source and destination share storage")

// Buffer is a width x height RGBA pixel buffer.
type Buffer struct {
	pix      []byte
	width    int
	height   int
	disposed bool
}

// New creates a zero-filled (transparent) buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixbuf: invalid dimensions %dx%d", width, height)
	}
	return &Buffer{
		pix:    make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromImage creates a buffer holding a copy of src converted to RGBA.
func FromImage(src image.Image) (*Buffer, error) {
	bounds := src.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(b.mustImage(), b.mustImage().Bounds(), src, bounds.Min, draw.Src)
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the byte length of one row.
func (b *Buffer) Stride() int { return b.width * bytesPerPixel }

// Disposed reports whether Dispose has been called.
func (b *Buffer) Disposed() bool { return b.disposed }

// Dispose releases the pixel storage. Further operations on the buffer
// return ErrDisposed. Dispose is idempotent.
func (b *Buffer) Dispose() {
	b.pix = nil
	b.disposed = true
}

// guard rejects use of a disposed buffer.
func (b *Buffer) guard(op string) error {
	if b.disposed {
		return fmt.Errorf("pixbuf: %s: %w", op, ErrDisposed)
	}
	return nil
}

func (b *Buffer) bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// row returns the bytes of row y between pixel columns x0 and x1.
func (b *Buffer) row(y, x0, x1 int) []byte {
	start := (y*b.width + x0) * bytesPerPixel
	end := (y*b.width + x1) * bytesPerPixel
	return b.pix[start:end]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) error {
	if err := b.guard("Fill"); err != nil {
		return err
	}
	if c.uniform() {
		r, _, _, _ := c.rgba()
		fastmem.SetBytes(b.pix, r)
		return nil
	}

	// Seed the first pixel, double it across the buffer. Each copy writes
	// past the filled prefix, so source and destination stay disjoint.
	r, g, bl, a := c.rgba()
	b.pix[0], b.pix[1], b.pix[2], b.pix[3] = r, g, bl, a
	for filled := bytesPerPixel; filled < len(b.pix); filled *= 2 {
		fastmem.CopyBytes(b.pix[filled:], b.pix[:filled])
	}
	return nil
}

// FillRect sets every pixel inside rect (clipped to the buffer) to c.
func (b *Buffer) FillRect(rect image.Rectangle, c Color) error {
	if err := b.guard("FillRect"); err != nil {
		return err
	}
	rect = rect.Intersect(b.bounds())
	if rect.Empty() {
		return nil
	}

	if c.uniform() {
		v, _, _, _ := c.rgba()
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			fastmem.SetBytes(b.row(y, rect.Min.X, rect.Max.X), v)
		}
		return nil
	}

	r, g, bl, a := c.rgba()
	first := b.row(rect.Min.Y, rect.Min.X, rect.Max.X)
	first[0], first[1], first[2], first[3] = r, g, bl, a
	for filled := bytesPerPixel; filled < len(first); filled *= 2 {
		fastmem.CopyBytes(first[filled:], first[:filled])
	}
	for y := rect.Min.Y + 1; y < rect.Max.Y; y++ {
		fastmem.CopyBytes(b.row(y, rect.Min.X, rect.Max.X), first)
	}
	return nil
}

// Blit copies src into the buffer with its top-left corner at. The copied
// area is clipped to the destination bounds. src must be a different buffer;
// the row copies require disjoint memory.
func (b *Buffer) Blit(src *Buffer, at image.Point) error {
	if err := b.guard("Blit"); err != nil {
		return err
	}
	if err := src.guard("Blit source"); err != nil {
		return err
	}
	if src == b {
		return ErrSharedStorage
	}

	area := image.Rect(at.X, at.Y, at.X+src.width, at.Y+src.height).Intersect(b.bounds())
	if area.Empty() {
		return nil
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := y - at.Y
		fastmem.CopyBytes(
			b.row(y, area.Min.X, area.Max.X),
			src.row(sy, area.Min.X-at.X, area.Max.X-at.X),
		)
	}
	return nil
}

// Equal reports whether both buffers have the same dimensions and identical
// pixel bytes. Disposed buffers compare unequal to everything.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.disposed || other.disposed {
		return false
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	return fastmem.EqualBytes(b.pix, other.pix)
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() (*Buffer, error) {
	if err := b.guard("Clone"); err != nil {
		return nil, err
	}
	out, err := New(b.width, b.height)
	if err != nil {
		return nil, err
	}
	fastmem.CopyBytes(out.pix, b.pix)
	return out, nil
}

// Scaled returns a new buffer with the contents resampled to the given
// dimensions. smooth selects bilinear resampling; otherwise nearest
// neighbor is used.
func (b *Buffer) Scaled(width, height int, smooth bool) (*Buffer, error) {
	if err := b.guard("Scaled"); err != nil {
		return nil, err
	}
	out, err := New(width, height)
	if err != nil {
		return nil, err
	}
	scaler := xdraw.Interpolator(xdraw.NearestNeighbor)
	if smooth {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(out.mustImage(), out.bounds(), b.mustImage(), b.bounds(), xdraw.Src, nil)
	return out, nil
}

// Image returns an image.RGBA view sharing the buffer's storage.
func (b *Buffer) Image() (*image.RGBA, error) {
	if err := b.guard("Image"); err != nil {
		return nil, err
	}
	return b.mustImage(), nil
}

// mustImage builds the shared view; callers have already checked disposal.
func (b *Buffer) mustImage() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.Stride(),
		Rect:   b.bounds(),
	}
}

// Pix exposes the raw RGBA bytes, or nil after disposal.
func (b *Buffer) Pix() []byte { return b.pix }
