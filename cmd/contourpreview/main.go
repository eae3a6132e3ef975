// Contour layer preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/contourpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	previewW     = 640
	previewH     = 480
	panelWidth   = windowWidth - previewW - 30
)

// previewParams holds the tunable contour-layer parameters.
type previewParams struct {
	Octaves       int
	BaseFrequency float32
	Lacunarity    float32
	Gain          float32
	TimeSpeed     float32
	CellSize      float32
	Levels        int
	Seed          int64
}

func defaultParams() previewParams {
	return previewParams{
		Octaves:       3,
		BaseFrequency: 0.008,
		Lacunarity:    2.0,
		Gain:          0.5,
		TimeSpeed:     0.3,
		CellSize:      20,
		Levels:        5,
		Seed:          42,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Contour Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()

	field := systems.NewNoiseField(params.Seed, params.Octaves,
		float64(params.BaseFrequency), float64(params.Lacunarity), float64(params.Gain))
	grid := systems.NewScalarGrid(previewW, previewH, params.CellSize)

	img := rl.GenImageColor(grid.Cols, grid.Rows, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var elapsed float32
	animating := true
	var segs []systems.Segment

	for !rl.WindowShouldClose() {
		if animating {
			elapsed += rl.GetFrameTime()
		}

		grid.Fill(field, float64(elapsed*params.TimeSpeed))
		updateTexture(texture, grid)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 12, G: 14, B: 22, A: 255})

		// Field backdrop
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(grid.Cols), Height: float32(grid.Rows)},
			rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH},
			rl.Vector2{}, 0, rl.White,
		)

		// Contour overlay, one extraction per level
		for _, threshold := range thresholds(params.Levels) {
			segs = systems.ExtractContours(grid, threshold, segs[:0])
			for _, s := range segs {
				rl.DrawLineV(
					rl.Vector2{X: 10 + s.X1, Y: 10 + s.Y1},
					rl.Vector2{X: 10 + s.X2, Y: 10 + s.Y2},
					rl.Color{R: 120, G: 180, B: 230, A: 200},
				)
			}
		}
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)
		changed := false

		rl.DrawText("Contour Layer Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed = intSlider(panelX, &panelY, "Octaves", &params.Octaves, 1, 6) || changed
		changed = slider(panelX, &panelY, "Base frequency", &params.BaseFrequency, 0.002, 0.03, "%.4f") || changed
		changed = slider(panelX, &panelY, "Lacunarity", &params.Lacunarity, 1.5, 4.0, "%.2f") || changed
		changed = slider(panelX, &panelY, "Gain", &params.Gain, 0.2, 0.9, "%.2f") || changed
		slider(panelX, &panelY, "Time speed", &params.TimeSpeed, 0, 1.5, "%.2f")
		if slider(panelX, &panelY, "Cell size", &params.CellSize, 8, 60, "%.0f") {
			grid.Resize(previewW, previewH, params.CellSize)
			resizeTexture(&texture, grid)
		}
		intSlider(panelX, &panelY, "Threshold levels", &params.Levels, 1, 9)

		if changed {
			field.Octaves = params.Octaves
			field.BaseFrequency = float64(params.BaseFrequency)
			field.Lacunarity = float64(params.Lacunarity)
			field.Gain = float64(params.Gain)
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			field = systems.NewNoiseField(params.Seed, params.Octaves,
				float64(params.BaseFrequency), float64(params.Lacunarity), float64(params.Gain))
		}
		panelY += 45

		// YAML snippet for pasting into config
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 22
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out := ""
			for _, line := range yamlLines(params) {
				out += line + "\n"
			}
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

// thresholds returns n levels spread symmetrically over [-0.6, 0.6].
func thresholds(n int) []float32 {
	if n == 1 {
		return []float32{0}
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = -0.6 + 1.2*float32(i)/float32(n-1)
	}
	return out
}

func yamlLines(p previewParams) []string {
	return []string{
		"contours:",
		fmt.Sprintf("  grid_cell_size: %.0f", p.CellSize),
		fmt.Sprintf("  octaves: %d", p.Octaves),
		fmt.Sprintf("  base_frequency: %.4f", p.BaseFrequency),
		fmt.Sprintf("  lacunarity: %.2f", p.Lacunarity),
		fmt.Sprintf("  gain: %.2f", p.Gain),
		fmt.Sprintf("  time_speed: %.2f", p.TimeSpeed),
	}
}

func slider(x float32, y *float32, label string, value *float32, lo, hi float32, format string) bool {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "", *value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.RayWhite)
	*y += 32
	if next != *value {
		*value = next
		return true
	}
	return false
}

func intSlider(x float32, y *float32, label string, value *int, lo, hi int) bool {
	f := float32(*value)
	if slider(x, y, label, &f, float32(lo), float32(hi), "%.0f") && int(f) != *value {
		*value = int(f)
		return true
	}
	return false
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// updateTexture maps grid values [-1,1] onto a dark blue-to-sand ramp.
func updateTexture(texture rl.Texture2D, g *systems.ScalarGrid) {
	pixels := make([]color.RGBA, g.Cols*g.Rows)
	for i, v := range g.Values {
		t := (v + 1) / 2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		pixels[i] = color.RGBA{
			R: uint8(20 + t*120),
			G: uint8(30 + t*110),
			B: uint8(60 + t*90),
			A: 255,
		}
	}
	rl.UpdateTexture(texture, pixels)
}

func resizeTexture(texture *rl.Texture2D, g *systems.ScalarGrid) {
	rl.UnloadTexture(*texture)
	img := rl.GenImageColor(g.Cols, g.Rows, rl.Black)
	*texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}
