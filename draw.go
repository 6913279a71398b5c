package trirast

import "math"

// maxLineCoord bounds line endpoints so that a far off-screen vertex does
// not turn into billions of clipped Bresenham steps.
const maxLineCoord = 1 << 16

// DrawLine draws a one-pixel line from (x0, y0) to (x1, y1), both ends
// included, with Bresenham's algorithm. Pixels outside the buffer are
// skipped.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		b.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineDDA draws a line with the digital differential analyzer: it
// takes max(|dx|, |dy|) unit steps from (x0, y0), rounding each position.
// The end point itself is not drawn, so chained segments do not overlap.
func (b *Buffer) DrawLineDDA(x0, y0, x1, y1 int, c Color) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x0), float64(y0)
	for range steps {
		b.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

// DrawRect fills the width x height rectangle whose top-left corner is
// (x, y).
func (b *Buffer) DrawRect(x, y, width, height int, c Color) {
	for row := max(y, 0); row < min(y+height, b.height); row++ {
		b.FillSpan(row, x, x+width-1, c)
	}
}

// DrawGrid draws horizontal and vertical lines every spacing pixels,
// starting at row and column 0. A spacing below 1 draws nothing.
func (b *Buffer) DrawGrid(spacing int, c Color) {
	if spacing < 1 {
		return
	}
	for y := 0; y < b.height; y++ {
		if y%spacing == 0 {
			b.FillSpan(y, 0, b.width-1, c)
			continue
		}
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x += spacing {
			row[x] = c
		}
	}
}

// DrawWireframe outlines the triangle's three edges. Vertex coordinates
// are truncated toward zero. Triangles with a non-finite coordinate are
// skipped.
func (b *Buffer) DrawWireframe(t *Triangle, c Color) {
	var px, py [3]int
	for i, p := range t.Points {
		x, okX := lineCoord(p.X)
		y, okY := lineCoord(p.Y)
		if !okX || !okY {
			return
		}
		px[i], py[i] = x, y
	}
	b.DrawLine(px[0], py[0], px[1], py[1], c)
	b.DrawLine(px[1], py[1], px[2], py[2], c)
	b.DrawLine(px[2], py[2], px[0], py[0], c)
}

// DrawVertices draws a size x size marker centered on each vertex.
func (b *Buffer) DrawVertices(t *Triangle, size int, c Color) {
	if size < 1 {
		return
	}
	for _, p := range t.Points {
		x, okX := lineCoord(p.X)
		y, okY := lineCoord(p.Y)
		if !okX || !okY {
			continue
		}
		b.DrawRect(x-size/2, y-size/2, size, size, c)
	}
}

// lineCoord truncates v to an int within ±maxLineCoord.
func lineCoord(v float32) (int, bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(max(min(f, maxLineCoord), -maxLineCoord)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
