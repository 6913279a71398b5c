package trirast

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// quad returns a 2x2 texture:
//
//	red   green
//	blue  white
func quad() *Texture {
	tex, err := NewTexture(2, 2, []Color{Red, Green, Blue, White})
	if err != nil {
		panic(err)
	}
	return tex
}

func TestNewTexture_Errors(t *testing.T) {
	if _, err := NewTexture(0, 2, nil); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("zero width error = %v, want ErrEmptyTexture", err)
	}
	if _, err := NewTexture(2, 2, make([]Color, 3)); !errors.Is(err, ErrTextureSize) {
		t.Errorf("short texels error = %v, want ErrTextureSize", err)
	}
}

func TestTexture_SampleNearest(t *testing.T) {
	tex := quad()
	tests := []struct {
		name string
		u, v float32
		want Color
	}{
		{"top left", 0.25, 0.25, Red},
		{"top right", 0.75, 0.25, Green},
		{"bottom left", 0.25, 0.75, Blue},
		{"bottom right", 0.75, 0.75, White},
		{"origin", 0, 0, Red},
		{"nan", float32(math.NaN()), float32(math.NaN()), Red},
		{"inf", float32(math.Inf(1)), 0.25, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.u, tt.v); got != tt.want {
				t.Errorf("Sample(%v, %v) = %#08x, want %#08x", tt.u, tt.v, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestTexture_WrapModes(t *testing.T) {
	tests := []struct {
		mode WrapMode
		u    float32
		want Color
	}{
		{WrapRepeat, 1.25, Red},
		{WrapRepeat, -0.25, Green},
		{WrapRepeat, 1.0, Red},
		{WrapClamp, 1.25, Green},
		{WrapClamp, -3, Red},
		{WrapClamp, 1.0, Green},
		{WrapMirror, 1.25, Green},
		{WrapMirror, 1.75, Red},
		{WrapMirror, -0.25, Red},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tex := quad()
			tex.Wrap = tt.mode
			if got := tex.Sample(tt.u, 0.25); got != tt.want {
				t.Errorf("%v Sample(%v, 0.25) = %#08x, want %#08x", tt.mode, tt.u, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestTexture_SampleBilinear(t *testing.T) {
	tex, _ := NewTexture(2, 1, []Color{Black, 0xFFFE0000})
	tex.Filter = FilterBilinear
	tex.Wrap = WrapClamp

	// Exactly on texel centers the filter reproduces the texel.
	if got := tex.Sample(0.25, 0.5); got != Black {
		t.Errorf("Sample at first texel center = %#08x, want black", uint32(got))
	}
	if got := tex.Sample(0.75, 0.5); got != 0xFFFE0000 {
		t.Errorf("Sample at second texel center = %#08x", uint32(got))
	}
	// Halfway between the centers the channels average.
	if got := tex.Sample(0.5, 0.5); got != 0xFF7F0000 {
		t.Errorf("Sample between centers = %#08x, want 0xff7f0000", uint32(got))
	}
}

func TestCheckerboard(t *testing.T) {
	tex := Checkerboard(4, 4, 2, White, Black)
	for _, tt := range []struct {
		x, y int
		want Color
	}{{0, 0, White}, {1, 1, White}, {2, 0, Black}, {0, 2, Black}, {3, 3, White}} {
		if got := tex.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %#08x, want %#08x", tt.x, tt.y, uint32(got), uint32(tt.want))
		}
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func assertQuad(t *testing.T, tex *Texture) {
	t.Helper()
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("texture size = %dx%d, want 2x2", tex.Width(), tex.Height())
	}
	want := []Color{Red, Green, Blue, White}
	for i, c := range want {
		if got := tex.At(i%2, i/2); got != c {
			t.Errorf("texel %d = %#08x, want %#08x", i, uint32(got), uint32(c))
		}
	}
}

func TestTextureFromImage(t *testing.T) {
	tex, err := TextureFromImage(testImage())
	if err != nil {
		t.Fatal(err)
	}
	assertQuad(t, tex)

	if _, err := TextureFromImage(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("empty image error = %v, want ErrEmptyTexture", err)
	}
}

func TestTextureFromImageSize(t *testing.T) {
	tex, err := TextureFromImageSize(testImage(), 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", tex.Width(), tex.Height())
	}
	// Corners keep the dominant source color.
	if _, r, _, _ := tex.At(0, 0).Channels(); r < 200 {
		t.Errorf("top-left red channel = %d, want mostly red", r)
	}
}

func TestDecodeTexture(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, testImage()); err != nil {
			t.Fatal(err)
		}
		tex, err := DecodeTexture(&buf)
		if err != nil {
			t.Fatal(err)
		}
		assertQuad(t, tex)
	})
	t.Run("bmp", func(t *testing.T) {
		var buf bytes.Buffer
		if err := bmp.Encode(&buf, testImage()); err != nil {
			t.Fatal(err)
		}
		tex, err := DecodeTexture(&buf)
		if err != nil {
			t.Fatal(err)
		}
		assertQuad(t, tex)
	})
	t.Run("garbage", func(t *testing.T) {
		if _, err := DecodeTexture(bytes.NewReader([]byte("not an image"))); err == nil {
			t.Error("DecodeTexture accepted garbage")
		}
	})
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatal(err)
	}
	assertQuad(t, tex)

	if _, err := LoadTexture(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("LoadTexture of a missing file returned nil error")
	}
}

func TestTexture_ZeroValue(t *testing.T) {
	for _, wrap := range []WrapMode{WrapRepeat, WrapClamp, WrapMirror} {
		for _, filter := range []Filter{FilterNearest, FilterBilinear} {
			tex := &Texture{Wrap: wrap, Filter: filter}
			if got := tex.Sample(0.5, 0.5); got != 0 {
				t.Errorf("%v/%v: Sample = %#08x, want 0", wrap, filter, uint32(got))
			}
			if got := tex.At(1, 1); got != 0 {
				t.Errorf("%v/%v: At = %#08x, want 0", wrap, filter, uint32(got))
			}
		}
	}
}
