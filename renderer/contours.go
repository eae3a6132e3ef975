package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

// DrawContours renders the per-threshold iso-line segment sets. Outer
// thresholds draw slightly fainter than the middle ones so the layers read
// as depth.
func DrawContours(lines [][]systems.Segment, r, g, b uint8, alpha float32) {
	n := len(lines)
	if n == 0 || alpha <= 0 {
		return
	}

	for i, segs := range lines {
		// Distance from the middle threshold, 0..1.
		depth := float32(absInt(2*i-(n-1))) / float32(maxInt(n-1, 1))
		a := alpha * (1 - 0.5*depth)
		color := rl.Color{R: r, G: g, B: b, A: uint8(a * 255)}

		for _, s := range segs {
			rl.DrawLineV(
				rl.Vector2{X: s.X1, Y: s.Y1},
				rl.Vector2{X: s.X2, Y: s.Y2},
				color,
			)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
