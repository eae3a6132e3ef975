// Package engine owns the simulation: the particle world, the noise/contour
// pipeline, pointer state, and the frame lifecycle. It is renderer-free;
// the host drives Step with its frame clock and draws from the read-only
// snapshots.
package engine

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
)

// maxStepSeconds caps a single simulated step. A backgrounded tab or a
// debugger pause otherwise hands the integrator a huge dt and the springs
// explode.
const maxStepSeconds = 0.1

type runState uint8

const (
	statePaused runState = iota
	stateRunning
	stateStopped
)

// Options holds construction parameters that are not part of the tunable
// config.
type Options struct {
	// Seed fixes the RNG for noise, spring jitter, breath phases and the
	// scatter fallback. Zero selects a fixed default.
	Seed int64
	// ReducedMotion substitutes a static instant-settle presentation with
	// no continuous animation.
	ReducedMotion bool
	// Seeds overrides mask/scatter seeding with explicit samples. Used by
	// tools and tests; offsets are taken as-is, unscaled.
	Seeds []systems.MaskSample
}

type loadResult struct {
	generation int
	samples    []systems.MaskSample
	err        error
}

// Engine is the orchestrator for one animation instance.
type Engine struct {
	cfg *config.Config
	rng *rand.Rand

	world  *ecs.World
	mapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Anchor,
		components.Sprite,
		components.Breath,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Anchor,
		components.Sprite,
		components.Breath,
	]

	centroid *systems.Centroid
	pointer  *systems.PointerController
	field    *systems.NoiseField
	grid     *systems.ScalarGrid
	contours [][]systems.Segment

	preset systems.SpringPreset
	frames *telemetry.FrameStats

	width, height float32
	state         runState
	elapsed       float64

	particleCount int
	fadeVisible   bool
	reducedMotion bool

	// Async mask loading. generation invalidates in-flight loads across
	// reinitializations; loads is drained at the top of each Step.
	generation   int
	loads        chan loadResult
	seeds        []systems.MaskSample
	seedsScaled  bool // true when seeds are surface-space (scatter/override)
	seedOverride bool
}

// New creates an engine for a width x height surface. The config is
// validated; a mask load failure later degrades to random scatter instead
// of failing construction.
func New(width, height float32, cfg *config.Config, opts Options) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface size must be positive, got %gx%g", width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	preset, err := systems.PresetByName(cfg.Particles.SpringPreset)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = 42
	}

	world := ecs.NewWorld()
	e := &Engine{
		cfg:   cfg.Clone(),
		rng:   rand.New(rand.NewSource(seed)),
		world: world,
		mapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Anchor,
			components.Sprite,
			components.Breath,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Anchor,
			components.Sprite,
			components.Breath,
		](world),
		pointer:       systems.NewPointerController(),
		frames:        telemetry.NewFrameStats(120),
		width:         width,
		height:        height,
		state:         statePaused,
		fadeVisible:   true,
		reducedMotion: opts.ReducedMotion,
		loads:         make(chan loadResult, 4),
		seedOverride:  opts.Seeds != nil,
	}

	e.centroid = systems.NewCentroid(width, height,
		float32(cfg.Centroid.SpringStrength), float32(cfg.Centroid.Friction))
	e.preset = preset
	e.field = systems.NewNoiseField(seed,
		cfg.Contours.Octaves, cfg.Contours.BaseFrequency,
		cfg.Contours.Lacunarity, cfg.Contours.Gain)
	e.grid = systems.NewScalarGrid(width, height, float32(cfg.Contours.GridCellSize))
	e.contours = make([][]systems.Segment, len(cfg.Contours.Thresholds))

	if opts.Seeds != nil {
		e.seeds = opts.Seeds
		e.seedsScaled = true
		e.applySeeds()
	} else {
		e.reseed()
	}

	return e, nil
}

// reseed kicks off particle seeding for the current generation: an async
// mask load when a logo source is configured, otherwise immediate random
// scatter. Until the mask arrives the swarm is empty and the host renders
// a placeholder frame.
func (e *Engine) reseed() {
	src := e.cfg.Logo.Source
	if src == "" {
		e.scatter()
		return
	}

	// The goroutine must not touch engine state: UpdateConfig swaps e.cfg
	// on the frame thread while loads are in flight. Everything it needs is
	// captured here.
	gen := e.generation
	density := e.cfg.Particles.SamplingDensity
	alphaThreshold := uint8(e.cfg.Particles.AlphaThreshold)
	go func() {
		f, err := os.Open(src)
		if err != nil {
			e.offerLoad(loadResult{generation: gen, err: err})
			return
		}
		defer f.Close()

		samples, err := systems.SampleMask(f, density, alphaThreshold)
		e.offerLoad(loadResult{generation: gen, samples: samples, err: err})
	}()
}

// offerLoad hands a load result to the frame loop without ever blocking
// the loader goroutine, even if the engine was destroyed meanwhile.
func (e *Engine) offerLoad(res loadResult) {
	select {
	case e.loads <- res:
	default:
	}
}

// drainLoads applies pending mask-load results. Results from a previous
// generation (a resize or reconfigure happened mid-load) are discarded.
func (e *Engine) drainLoads() {
	for {
		select {
		case res := <-e.loads:
			if res.generation != e.generation {
				slog.Debug("discarding stale mask load", "generation", res.generation)
				continue
			}
			if res.err != nil {
				slog.Warn("mask load failed, falling back to random scatter",
					"source", e.cfg.Logo.Source, "error", res.err)
				e.scatter()
				continue
			}
			e.seeds = res.samples
			e.seedsScaled = false
			e.applySeeds()
		default:
			return
		}
	}
}

// scatter seeds the degraded random particle field.
func (e *Engine) scatter() {
	e.seeds = systems.RandomScatter(e.cfg.Particles.Count, e.width, e.height, e.rng)
	e.seedsScaled = true
	e.applySeeds()
}

// fitScale maps mask-space offsets into surface space so the silhouette
// occupies the configured height fraction without clipping horizontally.
func (e *Engine) fitScale() float32 {
	if e.seedsScaled {
		return 1
	}
	maxX, maxY := systems.MaskExtent(e.seeds)
	scale := float32(1)
	if maxY > 0 {
		scale = e.height * float32(e.cfg.Logo.FitHeightFrac) / (2 * maxY)
	}
	if maxX > 0 {
		if s := e.width * 0.45 / maxX; s < scale {
			scale = s
		}
	}
	return scale
}

// applySeeds replaces the swarm wholesale from the current seed set.
// Particles spawn scattered with zero velocity and fade in as the springs
// assemble the silhouette; under reduced motion they spawn settled.
func (e *Engine) applySeeds() {
	e.clearParticles()

	scale := e.fitScale()
	for _, s := range e.seeds {
		stiffness, damping := e.preset.Sample(e.rng)

		anchor := components.Anchor{
			OffsetX:   s.OffsetX * scale,
			OffsetY:   s.OffsetY * scale,
			Stiffness: stiffness,
			Damping:   damping,
		}
		sprite := components.Sprite{
			Size:          s.Size,
			R:             s.R,
			G:             s.G,
			B:             s.B,
			TargetOpacity: 1,
		}
		breath := components.Breath{
			Phase:     e.rng.Float32() * 2 * math.Pi,
			Amplitude: e.preset.BreathAmp * (0.5 + e.rng.Float32()),
		}

		var pos components.Position
		var vel components.Velocity
		if e.reducedMotion {
			pos = components.Position{X: e.centroid.X + anchor.OffsetX, Y: e.centroid.Y + anchor.OffsetY}
			sprite.Opacity = 1
		} else {
			pos = components.Position{X: e.rng.Float32() * e.width, Y: e.rng.Float32() * e.height}
		}

		e.mapper.NewEntity(&pos, &vel, &anchor, &sprite, &breath)
	}
	e.particleCount = len(e.seeds)

	if !e.fadeVisible {
		e.setFadeTarget(false)
	}

	slog.Info("swarm seeded",
		"particles", e.particleCount,
		"from_mask", !e.seedsScaled && !e.seedOverride,
		"generation", e.generation,
	)
}

// clearParticles removes every particle entity. Two passes: collect while
// the query iterates, then remove.
func (e *Engine) clearParticles() {
	var toRemove []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, entity := range toRemove {
		e.mapper.Remove(entity)
	}
	e.particleCount = 0
}

// setFadeTarget flips every particle's target opacity. Position and
// velocity are untouched; fading is purely visual.
func (e *Engine) setFadeTarget(visible bool) {
	e.fadeVisible = visible
	target := float32(0)
	if visible {
		target = 1
	}
	query := e.filter.Query()
	for query.Next() {
		_, _, _, sprite, _ := query.Get()
		sprite.TargetOpacity = target
	}
}
