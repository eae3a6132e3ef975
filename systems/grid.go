package systems

// ScalarGrid is a lattice of field samples covering the drawing surface.
// Values are overwritten in place every frame; cells have no identity
// beyond their index. Resize reallocates, everything else reuses the
// buffer.
type ScalarGrid struct {
	Cols, Rows int
	CellSize   float32
	Values     []float32
}

// NewScalarGrid builds a grid covering a w x h surface at the given cell
// size. One extra column/row of sample points pads the far edges so
// contour cells span the full surface.
func NewScalarGrid(w, h, cellSize float32) *ScalarGrid {
	g := &ScalarGrid{}
	g.Resize(w, h, cellSize)
	return g
}

// Resize recomputes dimensions and reallocates the value buffer.
func (g *ScalarGrid) Resize(w, h, cellSize float32) {
	g.CellSize = cellSize
	g.Cols = int(w/cellSize) + 2
	g.Rows = int(h/cellSize) + 2
	g.Values = make([]float32, g.Cols*g.Rows)
}

// At returns the sample at lattice coordinates (i, j).
func (g *ScalarGrid) At(i, j int) float32 {
	return g.Values[j*g.Cols+i]
}

// Fill overwrites every lattice point from the field at animation time t.
func (g *ScalarGrid) Fill(field *NoiseField, t float64) {
	for j := 0; j < g.Rows; j++ {
		y := float64(float32(j) * g.CellSize)
		for i := 0; i < g.Cols; i++ {
			x := float64(float32(i) * g.CellSize)
			g.Values[j*g.Cols+i] = float32(field.Sample(x, y, t))
		}
	}
}
