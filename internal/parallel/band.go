package parallel

// Band is an inclusive range of rows [Y0, Y1].
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 + 1 }

// SplitRows divides rows [y0, y1] into at most n contiguous bands of
// near-equal height, none shorter than minRows (except when the whole range
// is). Bands are returned top to bottom and never overlap, so workers
// writing different bands write disjoint pixels.
func SplitRows(y0, y1, n, minRows int) []Band {
	total := y1 - y0 + 1
	if total <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	n = max(min(n, total/minRows), 1)

	bands := make([]Band, 0, n)
	base, extra := total/n, total%n
	y := y0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h - 1})
		y += h
	}
	return bands
}
