package trirast

import "math"

// Shader computes the final color of a covered pixel.
//
// The rasterizer handles coverage and passes the pixel's barycentric
// weights [l0, l1, l2], which sum to 1 inside the triangle and weight the
// triangle's vertices in order. Shaders capture only per-triangle
// constants, are built fresh for each triangle and must be safe for
// concurrent Shade calls.
type Shader interface {
	Shade(lambda [3]float32) Color
}

// FlatShader returns one color for every pixel.
type FlatShader struct {
	Color Color
}

// Shade implements Shader.
func (s FlatShader) Shade([3]float32) Color { return s.Color }

// GouraudShader interpolates three vertex colors.
type GouraudShader struct {
	colors [3]RGB
}

// NewGouraudShader unpacks the vertex colors once for the triangle.
func NewGouraudShader(vertexColors [3]Color) GouraudShader {
	return GouraudShader{colors: unpackAll(vertexColors)}
}

// Shade implements Shader. The result is opaque.
func (s GouraudShader) Shade(l [3]float32) Color {
	return weighted(&s.colors, l).Pack()
}

// TextureShader samples a texture at affinely interpolated UVs.
// It is cheaper than PerspectiveTextureShader but warps textures on
// triangles that are not parallel to the screen.
type TextureShader struct {
	tex Sampler
	uvs [3]UV
}

// NewTextureShader creates an affine texture shader.
func NewTextureShader(tex Sampler, uvs [3]UV) TextureShader {
	return TextureShader{tex: tex, uvs: uvs}
}

// Shade implements Shader.
func (s TextureShader) Shade(l [3]float32) Color {
	u, v := affineUV(&s.uvs, l)
	return s.tex.Sample(u, v)
}

// TextureModulateShader multiplies an affinely sampled texture by
// Gouraud-interpolated lighting.
type TextureModulateShader struct {
	tex    Sampler
	uvs    [3]UV
	colors [3]RGB
}

// NewTextureModulateShader creates an affine texture shader lit by the
// vertex colors.
func NewTextureModulateShader(tex Sampler, uvs [3]UV, vertexColors [3]Color) TextureModulateShader {
	return TextureModulateShader{tex: tex, uvs: uvs, colors: unpackAll(vertexColors)}
}

// Shade implements Shader. The result is opaque.
func (s TextureModulateShader) Shade(l [3]float32) Color {
	u, v := affineUV(&s.uvs, l)
	light := weighted(&s.colors, l)
	return s.tex.Sample(u, v).UnpackRGB().Mul(light).Pack()
}

// perspective holds the per-vertex quantities that interpolate linearly in
// screen space: u/w, v/w and 1/w.
type perspective struct {
	uOverW [3]float32
	vOverW [3]float32
	invW   [3]float32
	uvs    [3]UV
}

func newPerspective(uvs [3]UV, points [3]Point) perspective {
	var p perspective
	p.uvs = uvs
	for i, pt := range points {
		if !(math.Abs(float64(pt.W)) >= epsilon) {
			// A vertex on the eye plane contributes nothing.
			continue
		}
		inv := 1 / pt.W
		p.invW[i] = inv
		p.uOverW[i] = uvs[i].U * inv
		p.vOverW[i] = uvs[i].V * inv
	}
	return p
}

// uv recovers the perspective-correct texture coordinate. When the
// interpolated 1/w vanishes the affine coordinate is used instead.
func (p *perspective) uv(l [3]float32) (u, v float32) {
	invW := l[0]*p.invW[0] + l[1]*p.invW[1] + l[2]*p.invW[2]
	if !(math.Abs(float64(invW)) >= epsilon) {
		return affineUV(&p.uvs, l)
	}
	u = (l[0]*p.uOverW[0] + l[1]*p.uOverW[1] + l[2]*p.uOverW[2]) / invW
	v = (l[0]*p.vOverW[0] + l[1]*p.vOverW[1] + l[2]*p.vOverW[2]) / invW
	return u, v
}

// PerspectiveTextureShader samples a texture at perspective-correct UVs.
// The divisor of each vertex is read from Point.W.
type PerspectiveTextureShader struct {
	tex Sampler
	p   perspective
}

// NewPerspectiveTextureShader creates a perspective-correct texture shader.
func NewPerspectiveTextureShader(tex Sampler, uvs [3]UV, points [3]Point) PerspectiveTextureShader {
	return PerspectiveTextureShader{tex: tex, p: newPerspective(uvs, points)}
}

// Shade implements Shader.
func (s PerspectiveTextureShader) Shade(l [3]float32) Color {
	u, v := s.p.uv(l)
	return s.tex.Sample(u, v)
}

// PerspectiveTextureModulateShader combines perspective-correct texturing
// with affinely interpolated lighting. Lighting varies slowly enough that
// the affine error is not visible.
type PerspectiveTextureModulateShader struct {
	tex    Sampler
	p      perspective
	colors [3]RGB
}

// NewPerspectiveTextureModulateShader creates a perspective-correct texture
// shader lit by the vertex colors.
func NewPerspectiveTextureModulateShader(tex Sampler, uvs [3]UV, points [3]Point, vertexColors [3]Color) PerspectiveTextureModulateShader {
	return PerspectiveTextureModulateShader{
		tex:    tex,
		p:      newPerspective(uvs, points),
		colors: unpackAll(vertexColors),
	}
}

// Shade implements Shader. The result is opaque.
func (s PerspectiveTextureModulateShader) Shade(l [3]float32) Color {
	u, v := s.p.uv(l)
	light := weighted(&s.colors, l)
	return s.tex.Sample(u, v).UnpackRGB().Mul(light).Pack()
}

// NewShader picks the shader variant for a triangle.
//
// Without a texture, ShadingGouraud interpolates the vertex colors and
// every other mode fills with the triangle color. With a texture, Gouraud
// triangles modulate the texture by their vertex colors and other
// triangles show the bare texture. perspective selects the
// perspective-correct texture variants.
func NewShader(t *Triangle, tex Sampler, perspective bool) Shader {
	gouraud := t.Shading == ShadingGouraud
	switch {
	case tex == nil && gouraud:
		return NewGouraudShader(t.VertexColors)
	case tex == nil:
		return FlatShader{Color: t.Color}
	case perspective && gouraud:
		return NewPerspectiveTextureModulateShader(tex, t.UVs, t.Points, t.VertexColors)
	case perspective:
		return NewPerspectiveTextureShader(tex, t.UVs, t.Points)
	case gouraud:
		return NewTextureModulateShader(tex, t.UVs, t.VertexColors)
	default:
		return NewTextureShader(tex, t.UVs)
	}
}

func unpackAll(c [3]Color) [3]RGB {
	return [3]RGB{c[0].UnpackRGB(), c[1].UnpackRGB(), c[2].UnpackRGB()}
}

func affineUV(uvs *[3]UV, l [3]float32) (u, v float32) {
	u = l[0]*uvs[0].U + l[1]*uvs[1].U + l[2]*uvs[2].U
	v = l[0]*uvs[0].V + l[1]*uvs[1].V + l[2]*uvs[2].V
	return u, v
}
