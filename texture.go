package trirast

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture errors.
var (
	// ErrTextureSize is returned when texel data does not match the
	// requested dimensions.
	ErrTextureSize = errors.New("trirast: texture size does not match dimensions")

	// ErrEmptyTexture is returned for textures or images with no texels.
	ErrEmptyTexture = errors.New("trirast: empty texture")
)

// Sampler is the read-only texture contract consumed by shaders.
// Sample must be safe for concurrent use.
type Sampler interface {
	Sample(u, v float32) Color
}

// WrapMode determines how texture coordinates outside [0, 1] are handled.
type WrapMode uint8

const (
	// WrapRepeat tiles the texture (default).
	WrapRepeat WrapMode = iota
	// WrapClamp clamps to the nearest edge texel.
	WrapClamp
	// WrapMirror tiles the texture, mirroring every other tile.
	WrapMirror
)

// String returns the wrap mode name.
func (m WrapMode) String() string {
	switch m {
	case WrapRepeat:
		return "repeat"
	case WrapClamp:
		return "clamp"
	case WrapMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Filter selects the texel reconstruction filter.
type Filter uint8

const (
	// FilterNearest picks the texel containing the sample point (default).
	FilterNearest Filter = iota
	// FilterBilinear blends the four texels around the sample point.
	FilterBilinear
)

// Texture is a 2D array of packed colors. Create one with NewTexture,
// Checkerboard or one of the loaders; the zero value samples as 0.
//
// The texel at (0, 0) is the top-left corner: u grows to the right and v
// grows downwards. A NaN coordinate samples as 0.
type Texture struct {
	width  int
	height int
	texels []Color
	Wrap   WrapMode
	Filter Filter
}

// NewTexture creates a texture from row-major texels.
func NewTexture(width, height int, texels []Color) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyTexture
	}
	if len(texels) != width*height {
		return nil, fmt.Errorf("%w: len %d, %dx%d", ErrTextureSize, len(texels), width, height)
	}
	return &Texture{width: width, height: height, texels: texels}, nil
}

// Checkerboard returns a width x height texture of cell-sized squares
// alternating between a and b, starting with a at the top-left.
func Checkerboard(width, height, cell int, a, b Color) *Texture {
	width, height, cell = max(width, 1), max(height, 1), max(cell, 1)
	texels := make([]Color, width*height)
	for y := range height {
		for x := range width {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			texels[y*width+x] = c
		}
	}
	return &Texture{width: width, height: height, texels: texels}
}

// TextureFromImage converts any image to a texture at its native size.
func TextureFromImage(img image.Image) (*Texture, error) {
	r := img.Bounds()
	if r.Empty() {
		return nil, ErrEmptyTexture
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return textureFromNRGBA(dst), nil
}

// TextureFromImageSize converts an image to a width x height texture,
// resampling with an approximate bilinear scaler.
func TextureFromImageSize(img image.Image, width, height int) (*Texture, error) {
	if img.Bounds().Empty() || width <= 0 || height <= 0 {
		return nil, ErrEmptyTexture
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return textureFromNRGBA(dst), nil
}

func textureFromNRGBA(img *image.NRGBA) *Texture {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	texels := make([]Color, w*h)
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := range w {
			p := row[x*4 : x*4+4 : x*4+4]
			texels[y*w+x] = Color(uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2]))
		}
	}
	return &Texture{width: w, height: h, texels: texels}
}

// DecodeTexture decodes an image stream into a texture.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("trirast: decode texture: %w", err)
	}
	return TextureFromImage(img)
}

// LoadTexture reads and decodes a texture file.
func LoadTexture(path string) (*Texture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("trirast: read texture: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyTexture
	}
	return DecodeTexture(bytes.NewReader(data))
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// At returns the texel at (x, y), wrapped according to the wrap mode.
// A Texture with no texels returns 0.
func (t *Texture) At(x, y int) Color {
	if len(t.texels) == 0 || t.width <= 0 || t.height <= 0 {
		return 0
	}
	return t.texels[wrapIndex(y, t.height, t.Wrap)*t.width+wrapIndex(x, t.width, t.Wrap)]
}

// Sample returns the filtered color at (u, v). A Texture with no texels
// returns 0.
func (t *Texture) Sample(u, v float32) Color {
	if len(t.texels) == 0 {
		return 0
	}
	fu := reduceCoord(float64(u), t.Wrap) * float64(t.width)
	fv := reduceCoord(float64(v), t.Wrap) * float64(t.height)

	if t.Filter != FilterBilinear {
		return t.At(int(math.Floor(fu)), int(math.Floor(fv)))
	}

	// Texel centers sit at half-integer positions.
	fu -= 0.5
	fv -= 0.5
	x0, y0 := math.Floor(fu), math.Floor(fv)
	tx, ty := float32(fu-x0), float32(fv-y0)
	ix, iy := int(x0), int(y0)

	top := Lerp(t.At(ix, iy), t.At(ix+1, iy), tx)
	bottom := Lerp(t.At(ix, iy+1), t.At(ix+1, iy+1), tx)
	return Lerp(top, bottom, ty)
}

// reduceCoord brings c into a small range with the same wrapped meaning,
// so that the scaled coordinate fits an int. NaN and infinities become 0.
func reduceCoord(c float64, mode WrapMode) float64 {
	switch mode {
	case WrapClamp:
		c = math.Max(-1, math.Min(2, c))
	case WrapMirror:
		c -= 2 * math.Floor(c/2)
	default:
		c -= math.Floor(c)
	}
	if math.IsNaN(c) {
		return 0
	}
	return c
}

// wrapIndex maps any texel index into [0, n).
func wrapIndex(i, n int, mode WrapMode) int {
	switch mode {
	case WrapClamp:
		return min(max(i, 0), n-1)
	case WrapMirror:
		m := ((i % (2 * n)) + 2*n) % (2 * n)
		if m >= n {
			m = 2*n - 1 - m
		}
		return m
	default:
		return ((i % n) + n) % n
	}
}
