package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/trirast"
)

// Camera is a perspective camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
	FOV             float32
	Near, Far       float32
}

// DefaultCamera looks at the origin from five units down the -Z axis.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, -5},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    60,
		Near:   0.1,
		Far:    100,
	}
}

// Options controls Project.
type Options struct {
	// Cull drops faces that point away from the camera.
	Cull bool
	// Shading is copied to every triangle. ShadingFlat lights each face
	// once; ShadingGouraud lights each vertex.
	Shading trirast.ShadingMode
	// Light is the direction light travels in world space.
	Light mgl32.Vec3
	// Ambient is the minimum light intensity in [0, 1].
	Ambient float32
}

// DefaultOptions culls back faces and lights the scene from the camera.
func DefaultOptions() Options {
	return Options{
		Cull:    true,
		Shading: trirast.ShadingGouraud,
		Light:   mgl32.Vec3{0, 0, 1},
		Ambient: 0.2,
	}
}

// Lambert returns the diffuse intensity of a surface with the given normal
// lit by light traveling in direction light, never below ambient.
func Lambert(normal, light mgl32.Vec3, ambient float32) float32 {
	if normal.Len() == 0 || light.Len() == 0 {
		return ambient
	}
	d := max(-normal.Normalize().Dot(light.Normalize()), 0)
	return ambient + (1-ambient)*d
}

// ModelMatrix rotates about X, then Y, then Z. Angles are in radians.
func ModelMatrix(rotation mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))
}

// Project transforms m into screen-space triangles for a width x height
// frame. Each Point keeps its clip-space W for perspective-correct
// texturing, and AvgDepth is the mean W of the three corners, so sorting
// by descending AvgDepth draws back to front.
//
// Faces with a corner closer than the near plane are dropped.
func Project(m *Mesh, rotation mgl32.Vec3, cam Camera, width, height int, opts Options) []trirast.Triangle {
	return AppendProjected(nil, m, rotation, cam, width, height, opts)
}

// AppendProjected is like Project but appends to dst, so a caller can reuse
// one slice across frames.
func AppendProjected(dst []trirast.Triangle, m *Mesh, rotation mgl32.Vec3, cam Camera, width, height int, opts Options) []trirast.Triangle {
	if width <= 0 || height <= 0 {
		return dst
	}
	model := ModelMatrix(rotation)
	viewProj := mgl32.Perspective(mgl32.DegToRad(cam.FOV), float32(width)/float32(height), cam.Near, cam.Far).
		Mul4(mgl32.LookAtV(cam.Eye, cam.Target, cam.Up))
	w, h := float32(width), float32(height)

	for _, f := range m.Faces {
		local := m.corners(f)
		var world [3]mgl32.Vec3
		for i, v := range local {
			world[i] = model.Mul4x1(v.Vec4(1)).Vec3()
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if opts.Cull && normal.Dot(cam.Eye.Sub(world[0])) < 0 {
			continue
		}

		tri := trirast.Triangle{
			Color:   f.Color,
			Shading: opts.Shading,
			UVs:     f.UVs,
		}
		visible := true
		var depth float32
		for i, v := range world {
			clip := viewProj.Mul4x1(v.Vec4(1))
			cw := clip.W()
			if cw < cam.Near {
				visible = false
				break
			}
			tri.Points[i] = trirast.Point{
				X: (clip.X()/cw + 1) * 0.5 * w,
				Y: (1 - clip.Y()/cw) * 0.5 * h,
				W: cw,
			}
			depth += cw
		}
		if !visible {
			continue
		}
		tri.AvgDepth = depth / 3

		switch opts.Shading {
		case trirast.ShadingFlat:
			tri.Color = trirast.Modulate(f.Color, Lambert(normal, opts.Light, opts.Ambient))
		case trirast.ShadingGouraud:
			for i, v := range local {
				// Corner normals of a centered convex mesh point away from
				// its center.
				n := model.Mul4x1(v.Vec4(0)).Vec3()
				tri.VertexColors[i] = trirast.Modulate(f.Color, Lambert(n, opts.Light, opts.Ambient))
			}
		}
		dst = append(dst, tri)
	}
	return dst
}
