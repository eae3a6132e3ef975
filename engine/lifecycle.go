package engine

import (
	"log/slog"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/systems"
)

// Start begins (or resumes) stepping. No-op after Destroy.
func (e *Engine) Start() {
	if e.state == stateStopped {
		return
	}
	e.state = stateRunning
}

// Pause halts stepping; Step becomes a no-op until Resume. The host's
// frame clock keeps its own baseline, and the per-step dt ceiling absorbs
// any gap accumulated while paused.
func (e *Engine) Pause() {
	if e.state == stateStopped {
		return
	}
	e.state = statePaused
}

// Resume continues stepping after a Pause.
func (e *Engine) Resume() { e.Start() }

// TogglePause flips between running and paused.
func (e *Engine) TogglePause() {
	if e.state == stateRunning {
		e.Pause()
	} else {
		e.Start()
	}
}

// Paused reports whether stepping is currently suspended.
func (e *Engine) Paused() bool { return e.state != stateRunning }

// Destroy tears the instance down: particles are discarded, zones cleared,
// and any in-flight mask load is orphaned (its result will be dropped).
// Terminal; the engine cannot be restarted.
func (e *Engine) Destroy() {
	if e.state == stateStopped {
		return
	}
	e.state = stateStopped
	e.generation++
	e.clearParticles()
	e.pointer.ClearZones()
}

// Resize reinitializes for a new surface size. This is a full reinit, not
// an incremental patch: the grid is reallocated, offsets are re-derived
// from the retained seeds, and any in-flight load for the old size is
// invalidated.
func (e *Engine) Resize(width, height float32) {
	if e.state == stateStopped || width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = width, height
	e.generation++
	e.centroid.Resize(width, height)
	e.grid.Resize(width, height, float32(e.cfg.Contours.GridCellSize))

	if e.seedsScaled && !e.seedOverride {
		// Scatter seeds are surface-space; regenerate for the new size.
		e.scatter()
	} else if e.seeds != nil {
		e.applySeeds()
	}

	slog.Info("effect resized", "width", width, "height", height)
}

// UpdateConfig applies a configuration change through a mutator over a
// copy of the current config. The change is validated before it takes
// effect; on error the running config is untouched. Structural changes
// (particle count, sampling density, spring preset, grid cell size, logo
// source) trigger a full reinitialization, everything else applies on the
// next Step.
func (e *Engine) UpdateConfig(mutate func(*config.Config)) error {
	if e.state == stateStopped {
		return nil
	}

	next := e.cfg.Clone()
	mutate(next)
	if err := next.Validate(); err != nil {
		return err
	}
	preset, err := systems.PresetByName(next.Particles.SpringPreset)
	if err != nil {
		return err
	}

	prev := e.cfg
	structural := next.Particles.Count != prev.Particles.Count ||
		next.Particles.SamplingDensity != prev.Particles.SamplingDensity ||
		next.Particles.AlphaThreshold != prev.Particles.AlphaThreshold ||
		next.Particles.SpringPreset != prev.Particles.SpringPreset ||
		next.Contours.GridCellSize != prev.Contours.GridCellSize ||
		next.Logo.Source != prev.Logo.Source ||
		next.Logo.FitHeightFrac != prev.Logo.FitHeightFrac

	fieldChanged := next.Contours.Octaves != prev.Contours.Octaves ||
		next.Contours.BaseFrequency != prev.Contours.BaseFrequency ||
		next.Contours.Lacunarity != prev.Contours.Lacunarity ||
		next.Contours.Gain != prev.Contours.Gain

	e.cfg = next
	e.preset = preset
	e.centroid.SetParams(
		float32(next.Centroid.SpringStrength), float32(next.Centroid.Friction))

	if fieldChanged {
		e.field.Octaves = next.Contours.Octaves
		e.field.BaseFrequency = next.Contours.BaseFrequency
		e.field.Lacunarity = next.Contours.Lacunarity
		e.field.Gain = next.Contours.Gain
	}

	if structural {
		e.generation++
		e.grid.Resize(e.width, e.height, float32(next.Contours.GridCellSize))
		if e.seedOverride {
			e.applySeeds()
		} else {
			e.reseed()
		}
		slog.Info("structural config change, reinitializing")
	}
	return nil
}
