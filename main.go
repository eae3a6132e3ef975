package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/engine"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
)

// navButton is one fake header control; its rect doubles as a registered
// interactive zone so the swarm fades out underneath it.
type navButton struct {
	label string
	rect  rl.Rectangle
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logoPath := flag.String("logo", "", "Logo mask image (overrides config logo.source)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	reducedMotion := flag.Bool("reduced-motion", false, "Static instant-settle presentation (accessibility)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *logoPath != "" {
		cfg.Logo.Source = *logoPath
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "drift")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	width := float32(cfg.Screen.Width)
	height := float32(cfg.Screen.Height)

	eng, err := engine.New(width, height, cfg, engine.Options{
		Seed:          rngSeed,
		ReducedMotion: *reducedMotion,
	})
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		os.Exit(1)
	}
	defer eng.Destroy()

	nav := layoutNav(width)
	registerZones(eng, nav)
	eng.Start()

	slog.Info("starting effect",
		"seed", rngSeed,
		"logo", cfg.Logo.Source,
		"reduced_motion", *reducedMotion,
	)

	bg := rl.Color{R: cfg.Render.Background[0], G: cfg.Render.Background[1], B: cfg.Render.Background[2], A: 255}
	windowClock := 0.0
	runClock := 0.0

	for !rl.WindowShouldClose() {
		// Window resize propagation
		if rl.IsWindowResized() {
			width = float32(rl.GetScreenWidth())
			height = float32(rl.GetScreenHeight())
			eng.Resize(width, height)
			nav = layoutNav(width)
			registerZones(eng, nav)
		}

		handleKeys(eng)

		// Pointer is polled, not pushed: one snapshot per frame.
		if rl.IsCursorOnScreen() {
			m := rl.GetMousePosition()
			eng.PointerMoved(m.X, m.Y)
		} else {
			eng.PointerLeft()
		}

		dt := rl.GetFrameTime()
		eng.Step(dt)

		// Telemetry window rollover
		if om != nil && !eng.Paused() {
			windowClock += float64(dt)
			runClock += float64(dt)
			if windowClock >= cfg.Telemetry.StatsWindow {
				writeWindow(om, eng, runClock)
				windowClock = 0
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)

		renderer.DrawContours(eng.ContourLines(),
			cfg.Render.ContourColor[0], cfg.Render.ContourColor[1], cfg.Render.ContourColor[2],
			float32(cfg.Render.ContourAlpha))
		renderer.DrawParticles(eng)

		for _, b := range nav {
			if gui.Button(b.rect, b.label) {
				slog.Info("nav clicked", "label", b.label)
			}
		}

		drawHUD(eng)
		rl.EndDrawing()
	}
}

// layoutNav places the fake header controls along the top-right edge.
func layoutNav(width float32) []navButton {
	labels := []string{"Work", "About", "Contact"}
	buttons := make([]navButton, len(labels))
	x := width - 16
	for i := len(labels) - 1; i >= 0; i-- {
		w := float32(88)
		x -= w + 12
		buttons[i] = navButton{
			label: labels[i],
			rect:  rl.Rectangle{X: x, Y: 16, Width: w, Height: 32},
		}
	}
	return buttons
}

func registerZones(eng *engine.Engine, nav []navButton) {
	eng.ClearZones()
	for _, b := range nav {
		eng.AddZone(systems.Zone{X: b.rect.X, Y: b.rect.Y, W: b.rect.Width, H: b.rect.Height})
	}
}

func handleKeys(eng *engine.Engine) {
	if rl.IsKeyPressed(rl.KeySpace) {
		eng.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		if err := eng.UpdateConfig(func(c *config.Config) {
			c.Contours.Enabled = !c.Contours.Enabled
		}); err != nil {
			slog.Warn("config update rejected", "error", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		if err := eng.UpdateConfig(func(c *config.Config) {
			c.Render.ShowParticles = !c.Render.ShowParticles
		}); err != nil {
			slog.Warn("config update rejected", "error", err)
		}
	}
}

func writeWindow(om *telemetry.OutputManager, eng *engine.Engine, elapsed float64) {
	stats := eng.Stats()
	segs := 0
	for _, set := range eng.ContourLines() {
		segs += len(set)
	}
	row := telemetry.FrameWindow{
		WindowEndSec: elapsed,
		FPS:          stats.FPS,
		FrameMsP50:   eng.FrameMillisQuantile(0.50),
		FrameMsP90:   eng.FrameMillisQuantile(0.90),
		FrameMsP99:   eng.FrameMillisQuantile(0.99),
		Particles:    stats.Particles,
		Contours:     segs,
	}
	if err := om.WriteFrameWindow(row); err != nil {
		slog.Warn("failed to write frame window", "error", err)
	}
}

func drawHUD(eng *engine.Engine) {
	stats := eng.Stats()
	rl.DrawText(fmt.Sprintf("FPS: %.0f  Particles: %d  Cells: %d  Centroid: %s",
		stats.FPS, stats.Particles, stats.GridCells, stats.State), 10, 10, 16, rl.Gray)
	if stats.Paused {
		rl.DrawText("PAUSED [space]", 10, 30, 16, rl.Yellow)
	}
	if stats.ReducedMotion {
		rl.DrawText("reduced motion", 10, 50, 16, rl.Gray)
	}
}
