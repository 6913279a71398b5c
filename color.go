package trirast

import "math"

// Color is a packed ARGB8888 pixel: A<<24 | R<<16 | G<<8 | B.
type Color uint32

// Named colors.
const (
	Black   Color = 0xFF000000
	White   Color = 0xFFFFFFFF
	Red     Color = 0xFFFF0000
	Green   Color = 0xFF00FF00
	Blue    Color = 0xFF0000FF
	Magenta Color = 0xFFFF00FF

	// Background is the default clear color of a Canvas (dark gray).
	Background Color = 0xFF1E1E1E
	// Grid is the overlay grid line color.
	Grid Color = 0xFF333333
	// Fill is the default triangle fill color.
	Fill Color = 0xFF444444
	// Wireframe is the default triangle edge color.
	Wireframe Color = 0xFF00FF00
	// Vertex is the default vertex marker color.
	Vertex Color = 0xFFFF0000
)

// RGB is an unpacked color with channels nominally in [0, 1].
// Channels are not clamped until the color is packed.
type RGB struct {
	R, G, B float32
}

// Pack converts normalized channels to a packed color.
// Each channel is clamped to [0, 1] and rounded to the nearest of 256 levels.
func Pack(r, g, b, a float32) Color {
	return Color(quantize(a)<<24 | quantize(r)<<16 | quantize(g)<<8 | quantize(b))
}

// quantize maps a normalized channel to [0, 255] with rounding.
func quantize(v float32) uint32 {
	x := float64(v) * 255
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint32(math.Round(x))
}

// Channels returns the 8-bit alpha, red, green and blue components.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Unpack returns the channels as floats in [0, 1].
// The conversion divides by 255 without rounding, so Unpack(Pack(x))
// reproduces x only to within 1/255.
func (c Color) Unpack() (r, g, b, a float32) {
	ca, cr, cg, cb := c.Channels()
	return float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255
}

// UnpackRGB returns the color channels without alpha.
func (c Color) UnpackRGB() RGB {
	r, g, b, _ := c.Unpack()
	return RGB{R: r, G: g, B: b}
}

// RGBA implements the image/color.Color interface.
// Colors are treated as straight (non-premultiplied) alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca, cr, cg, cb := c.Channels()
	a = uint32(ca) * 0x101
	r = uint32(cr) * 0x101 * a / 0xFFFF
	g = uint32(cg) * 0x101 * a / 0xFFFF
	b = uint32(cb) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// Modulate scales the red, green and blue channels by intensity.
// Intensity is not clamped; the scaled channels are clamped to [0, 255].
// Alpha is preserved.
func Modulate(c Color, intensity float32) Color {
	a, r, g, b := c.Channels()
	return Color(uint32(a)<<24 |
		scaleChannel(r, intensity)<<16 |
		scaleChannel(g, intensity)<<8 |
		scaleChannel(b, intensity))
}

func scaleChannel(ch uint8, k float32) uint32 {
	v := float32(ch) * k
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint32(v)
}

// Lerp interpolates every channel of c1 towards c2 by t.
// t is not clamped, so values outside [0, 1] extrapolate; the result is
// clamped per channel.
func Lerp(c1, c2 Color, t float32) Color {
	r1, g1, b1, a1 := c1.Unpack()
	r2, g2, b2, a2 := c2.Unpack()
	return Pack(
		r1+(r2-r1)*t,
		g1+(g2-g1)*t,
		b1+(b2-b1)*t,
		a1+(a2-a1)*t,
	)
}

// Lerp interpolates towards o by t.
func (c RGB) Lerp(o RGB, t float32) RGB {
	return RGB{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Mul multiplies two colors channel by channel.
func (c RGB) Mul(o RGB) RGB {
	return RGB{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Pack packs the color at full opacity.
func (c RGB) Pack() Color {
	return Pack(c.R, c.G, c.B, 1)
}

// weighted returns l0*c0 + l1*c1 + l2*c2.
func weighted(c *[3]RGB, l [3]float32) RGB {
	return RGB{
		R: l[0]*c[0].R + l[1]*c[1].R + l[2]*c[2].R,
		G: l[0]*c[0].G + l[1]*c[1].G + l[2]*c[2].G,
		B: l[0]*c[0].B + l[1]*c[1].B + l[2]*c[2].B,
	}
}
