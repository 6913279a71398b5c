package trirast

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	// ErrBufferSize is returned when a pixel slice does not hold exactly
	// width*height pixels.
	ErrBufferSize = errors.New("trirast: buffer size does not match dimensions")
)

// Buffer is a bounds-checked 2D view over a caller-owned pixel slice.
//
// A Buffer never owns its storage: it is created for the duration of a
// draw call and handed to exactly one rasterizer at a time. Pixels are
// stored row-major with no padding and the origin at the top-left corner.
type Buffer struct {
	pix    []Color
	width  int
	height int
}

// NewBuffer wraps pix as a width x height view.
// It returns ErrBufferSize if len(pix) != width*height or a dimension is
// negative.
func NewBuffer(pix []Color, width, height int) (*Buffer, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: len %d, %dx%d", ErrBufferSize, len(pix), width, height)
	}
	return &Buffer{pix: pix, width: width, height: height}, nil
}

// MustBuffer is like NewBuffer but panics on a size mismatch.
// Use it where the storage is allocated alongside the view.
func MustBuffer(pix []Color, width, height int) *Buffer {
	b, err := NewBuffer(pix, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the width of the view in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the view in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the backing pixel slice.
func (b *Buffer) Pix() []Color { return b.pix }

// SetPixel writes c at (x, y). Out-of-bounds coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Pixel returns the color at (x, y) and whether the coordinate is in bounds.
func (b *Buffer) Pixel(x, y int) (Color, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return b.pix[y*b.width+x], true
}

// FillSpan writes c to row y from x0 to x1 inclusive, clipped to the
// buffer. Nothing is written when y is out of range or the clipped span is
// empty.
func (b *Buffer) FillSpan(y, x0, x1 int, c Color) {
	if y < 0 || y >= b.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width-1)
	if x0 > x1 {
		return
	}
	row := b.pix[y*b.width+x0 : y*b.width+x1+1]
	for i := range row {
		row[i] = c
	}
}

// Clear fills the whole view with c.
func (b *Buffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Rows returns a view of rows [y0, y1) sharing this buffer's storage.
// The rows are clipped to the buffer; an empty range yields a 0-height view.
// Coordinates in the returned view are relative to y0.
func (b *Buffer) Rows(y0, y1 int) *Buffer {
	y0 = min(max(y0, 0), b.height)
	y1 = min(max(y1, y0), b.height)
	return &Buffer{
		pix:    b.pix[y0*b.width : y1*b.width],
		width:  b.width,
		height: y1 - y0,
	}
}
