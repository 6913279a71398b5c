// Package mesh holds the demo geometry and the projection stage that turns
// it into screen-space triangles for the rasterizer.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/trirast"
)

// ErrFaceIndex is returned by Validate when a face refers to a vertex that
// does not exist.
var ErrFaceIndex = errors.New("mesh: face index out of range")

// Face is a triangle of a mesh. A, B and C are 1-based vertex indices.
type Face struct {
	A, B, C int
	UVs     [3]trirast.UV
	Color   trirast.Color
}

// Mesh is an indexed triangle mesh in model space.
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    []Face
}

// Validate checks that every face index refers to a vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 1 || idx > n {
				return fmt.Errorf("%w: face %d uses vertex %d of %d", ErrFaceIndex, i, idx, n)
			}
		}
	}
	return nil
}

// corners returns the model-space vertices of face f.
func (m *Mesh) corners(f Face) [3]mgl32.Vec3 {
	return [3]mgl32.Vec3{m.Vertices[f.A-1], m.Vertices[f.B-1], m.Vertices[f.C-1]}
}

// Cube side colors, one per pair of faces.
var cubeColors = [6]trirast.Color{
	0xFFE04040, // front
	0xFF40C040, // right
	0xFF4060E0, // back
	0xFFE0C040, // left
	0xFFC040C0, // top
	0xFF40C0C0, // bottom
}

var (
	uvFirst  = [3]trirast.UV{{U: 0, V: 1}, {U: 0, V: 0}, {U: 1, V: 0}}
	uvSecond = [3]trirast.UV{{U: 0, V: 1}, {U: 1, V: 0}, {U: 1, V: 1}}
)

// Cube returns a 2x2x2 cube centered on the origin: 8 vertices and 12
// faces, two per side. Each side is textured with the full [0,1] UV square
// and has its own color.
func Cube() *Mesh {
	faces := [12][3]int{
		{1, 2, 3}, {1, 3, 4}, // front
		{4, 3, 5}, {4, 5, 6}, // right
		{6, 5, 7}, {6, 7, 8}, // back
		{8, 7, 2}, {8, 2, 1}, // left
		{2, 7, 5}, {2, 5, 3}, // top
		{6, 8, 1}, {6, 1, 4}, // bottom
	}
	m := &Mesh{
		Vertices: []mgl32.Vec3{
			{-1, -1, -1},
			{-1, 1, -1},
			{1, 1, -1},
			{1, -1, -1},
			{1, 1, 1},
			{1, -1, 1},
			{-1, 1, 1},
			{-1, -1, 1},
		},
		Faces: make([]Face, len(faces)),
	}
	for i, f := range faces {
		uvs := uvFirst
		if i%2 == 1 {
			uvs = uvSecond
		}
		m.Faces[i] = Face{A: f[0], B: f[1], C: f[2], UVs: uvs, Color: cubeColors[i/2]}
	}
	return m
}
