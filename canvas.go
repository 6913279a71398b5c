package trirast

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Canvas owns the pixel storage of a frame and keeps it across frames.
// Its Buffer view is what rasterizers draw into.
type Canvas struct {
	pix []Color
	buf Buffer
}

// NewCanvas creates a canvas of the given size cleared to Background.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size and clears it to Background. Storage is
// reused when it is large enough.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if cap(c.pix) < n {
		c.pix = make([]Color, n)
	}
	c.pix = c.pix[:n]
	c.buf = Buffer{pix: c.pix, width: width, height: height}
	c.Clear(Background)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.buf.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.buf.height }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col Color) { c.buf.Clear(col) }

// Buffer returns a view of the canvas pixels. The view stays valid until
// the next Resize.
func (c *Canvas) Buffer() *Buffer { return &c.buf }

// Bytes returns the frame as ARGB8888: one little-endian uint32 per pixel,
// row-major, top-left origin, no row padding. In memory each pixel reads
// B, G, R, A.
func (c *Canvas) Bytes() []byte {
	out := make([]byte, len(c.pix)*4)
	for i, p := range c.pix {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(p))
	}
	return out
}

// CopyRGBA writes the frame into dst as premultiplied R, G, B, A bytes, the
// layout of image.RGBA. It returns the number of pixels written, which is
// limited by len(dst)/4.
func (c *Canvas) CopyRGBA(dst []byte) int {
	n := min(len(c.pix), len(dst)/4)
	for i, p := range c.pix[:n] {
		r, g, b, a := p.RGBA()
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(r >> 8)
		d[1] = uint8(g >> 8)
		d[2] = uint8(b >> 8)
		d[3] = uint8(a >> 8)
	}
	return n
}

// Image returns a copy of the frame as an *image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.buf.width, c.buf.height))
	c.CopyRGBA(img.Pix)
	return img
}

// SavePNG writes the frame to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("trirast: create file: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("trirast: encode PNG: %w", err)
	}
	return f.Close()
}
