package systems

// Segment is one iso-line piece in surface px. Segments are produced fresh
// each extraction and consumed by the renderer the same frame.
type Segment struct {
	X1, Y1 float32
	X2, Y2 float32
}

// ExtractContours runs marching squares over the grid at one threshold and
// appends the crossing segments to segs, returning the extended slice.
// Callers pass segs[:0] to reuse the buffer across frames. Multi-threshold
// rendering calls this once per threshold; segment sets are never merged.
//
// Corner classification uses v > threshold, one bit per corner
// (tl=8, tr=4, br=2, bl=1). The two saddle cases (5 and 10) are resolved
// with a fixed choice: each diagonal high corner is cut off by its own
// segment, producing two disjoint pieces. No cell-center sampling.
func ExtractContours(g *ScalarGrid, threshold float32, segs []Segment) []Segment {
	cell := g.CellSize

	for j := 0; j < g.Rows-1; j++ {
		y0 := float32(j) * cell
		y1 := y0 + cell
		for i := 0; i < g.Cols-1; i++ {
			x0 := float32(i) * cell
			x1 := x0 + cell

			tl := g.At(i, j)
			tr := g.At(i+1, j)
			br := g.At(i+1, j+1)
			bl := g.At(i, j+1)

			idx := 0
			if tl > threshold {
				idx |= 8
			}
			if tr > threshold {
				idx |= 4
			}
			if br > threshold {
				idx |= 2
			}
			if bl > threshold {
				idx |= 1
			}
			if idx == 0 || idx == 15 {
				continue
			}

			// Interpolated crossing point on each cell edge.
			top := func() (float32, float32) { return x0 + cross(tl, tr, threshold)*cell, y0 }
			bottom := func() (float32, float32) { return x0 + cross(bl, br, threshold)*cell, y1 }
			left := func() (float32, float32) { return x0, y0 + cross(tl, bl, threshold)*cell }
			right := func() (float32, float32) { return x1, y0 + cross(tr, br, threshold)*cell }

			switch idx {
			case 1, 14:
				segs = appendSegment(segs, left, bottom)
			case 2, 13:
				segs = appendSegment(segs, bottom, right)
			case 3, 12:
				segs = appendSegment(segs, left, right)
			case 4, 11:
				segs = appendSegment(segs, top, right)
			case 6, 9:
				segs = appendSegment(segs, top, bottom)
			case 7, 8:
				segs = appendSegment(segs, top, left)
			case 5: // saddle: tr and bl high
				segs = appendSegment(segs, top, right)
				segs = appendSegment(segs, left, bottom)
			case 10: // saddle: tl and br high
				segs = appendSegment(segs, top, left)
				segs = appendSegment(segs, bottom, right)
			}
		}
	}
	return segs
}

// cross returns the fraction along edge a->b where the threshold is
// crossed. Callers only invoke it on edges with exactly one corner above
// the threshold, so the denominator is never zero.
func cross(a, b, threshold float32) float32 {
	return (threshold - a) / (b - a)
}

func appendSegment(segs []Segment, p1, p2 func() (float32, float32)) []Segment {
	x1, y1 := p1()
	x2, y2 := p2()
	return append(segs, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
}
