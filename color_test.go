package trirast

import (
	"image/color"
	"math"
	"testing"
)

// =============================================================================
// Pack / Unpack
// =============================================================================

func TestPack(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float32
		want       Color
	}{
		{"opaque red", 1, 0, 0, 1, 0xFFFF0000},
		{"opaque green", 0, 1, 0, 1, 0xFF00FF00},
		{"opaque blue", 0, 0, 1, 1, 0xFF0000FF},
		{"transparent black", 0, 0, 0, 0, 0x00000000},
		{"rounds half up", 0.5, 0.5, 0.5, 1, 0xFF808080},
		{"clamps high", 2, 1.5, 1.01, 9, 0xFFFFFFFF},
		{"clamps low", -1, -0.5, -0.01, -3, 0x00000000},
		{"nan is zero", float32(math.NaN()), 1, 1, 1, 0xFF00FFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("Pack(%v, %v, %v, %v) = %#08x, want %#08x", tt.r, tt.g, tt.b, tt.a, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestColor_Unpack(t *testing.T) {
	r, g, b, a := Color(0x80FF3300).Unpack()
	if a != 128.0/255 || r != 1 || g != 51.0/255 || b != 0 {
		t.Errorf("Unpack() = (%v, %v, %v, %v)", r, g, b, a)
	}
}

func TestColor_RoundTrip(t *testing.T) {
	const tol = 1.0 / 255
	for i := 0; i <= 100; i++ {
		v := float32(i) / 100
		r, g, b, a := Pack(v, 1-v, v/2, 1).Unpack()
		for _, d := range []float32{r - v, g - (1 - v), b - v/2, a - 1} {
			if math.Abs(float64(d)) > tol {
				t.Fatalf("round trip of %v drifted by %v, want <= 1/255", v, d)
			}
		}
	}
}

// Unpack is integer division, not an inverse of Pack's rounding.
func TestColor_UnpackIsNotExactInverse(t *testing.T) {
	r, _, _, _ := Pack(0.3, 0, 0, 1).Unpack()
	if r == 0.3 {
		t.Error("expected 0.3 to be quantized away by the pack/unpack round trip")
	}
	if Pack(r, 0, 0, 1) != Pack(0.3, 0, 0, 1) {
		t.Error("re-packing an unpacked channel must be stable")
	}
}

func TestColor_ImplementsColorColor(t *testing.T) {
	var c color.Color = Color(0xFF102030)
	r, g, b, a := c.RGBA()
	if r != 0x1010 || g != 0x2020 || b != 0x3030 || a != 0xFFFF {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}

	// Half transparent colors are premultiplied for image/color.
	r, _, _, a = Color(0x80FF0000).RGBA()
	if a != 0x8080 || r != 0x8080 {
		t.Errorf("RGBA() of half transparent red = (%#x, a=%#x), want 0x8080", r, a)
	}
}

// =============================================================================
// Modulate
// =============================================================================

func TestModulate(t *testing.T) {
	tests := []struct {
		name      string
		c         Color
		intensity float32
		want      Color
	}{
		{"identity", 0xFF804020, 1, 0xFF804020},
		{"half", 0xFF804020, 0.5, 0xFF402010},
		{"zero keeps alpha", 0x7F804020, 0, 0x7F000000},
		{"negative clamps to zero", 0xFF804020, -2, 0xFF000000},
		{"overbright clamps", 0xFF804020, 4, 0xFFFFFF80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Modulate(tt.c, tt.intensity); got != tt.want {
				t.Errorf("Modulate(%#08x, %v) = %#08x, want %#08x", uint32(tt.c), tt.intensity, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestModulate_NeverExceeds255(t *testing.T) {
	for _, k := range []float32{0.9, 1, 1.5, 10, 1e6} {
		r, g, b, _ := Modulate(0xFFFAFBFC, k).Unpack()
		if r > 1 || g > 1 || b > 1 {
			t.Errorf("Modulate(..., %v) unpacked above 1: (%v, %v, %v)", k, r, g, b)
		}
	}
}

// =============================================================================
// Lerp
// =============================================================================

func TestLerp(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Color
		t      float32
		want   Color
	}{
		{"start", Black, White, 0, Black},
		{"end", Black, White, 1, White},
		{"middle", 0xFF000000, 0xFFFE0000, 0.5, 0xFF7F0000},
		{"alpha", 0x00000000, 0xFF000000, 0.5, 0x80000000},
		{"extrapolates and clamps", 0xFF808080, White, 3, White},
		{"negative t clamps", 0xFF808080, White, -3, 0xFF000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.c1, tt.c2, tt.t); got != tt.want {
				t.Errorf("Lerp(%#08x, %#08x, %v) = %#08x, want %#08x",
					uint32(tt.c1), uint32(tt.c2), tt.t, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestRGB_LerpMulPack(t *testing.T) {
	a := RGB{R: 1, G: 0, B: 0.5}
	b := RGB{R: 0, G: 1, B: 0.5}
	mid := a.Lerp(b, 0.5)
	if mid != (RGB{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("Lerp = %+v", mid)
	}
	if got := a.Mul(b); got != (RGB{R: 0, G: 0, B: 0.25}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := (RGB{R: 1, G: 1, B: 1}).Pack(); got != White {
		t.Errorf("Pack = %#08x, want white", uint32(got))
	}
}
