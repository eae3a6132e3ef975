package engine

import (
	"math"

	"github.com/pthm-cable/drift/systems"
)

// Step advances the simulation by dt seconds. The intra-frame order is a
// contract: pointer snapshot, centroid advance, particle retarget and
// integration, then contour extraction; the host renders afterwards.
// No-op while paused or destroyed.
func (e *Engine) Step(dt float32) {
	if e.state != stateRunning || dt <= 0 {
		return
	}
	if dt > maxStepSeconds {
		dt = maxStepSeconds
	}

	e.drainLoads()
	e.frames.Record(float64(dt))

	pointer := e.pointer.State()
	if visible := !pointer.OverZone; visible != e.fadeVisible {
		e.setFadeTarget(visible)
	}

	if e.reducedMotion {
		e.stepReduced(pointer, dt)
		return
	}

	e.elapsed += float64(dt)

	e.centroid.Advance(pointer, dt)
	e.stepParticles(pointer, dt)
	if e.cfg.Contours.Enabled {
		e.extractContours()
	}
}

// stepParticles retargets every particle from the centroid, applies
// pointer repulsion and the spring step, and low-pass filters opacity.
// Single pass over the world, no allocation.
func (e *Engine) stepParticles(pointer systems.PointerState, dt float32) {
	cfg := e.cfg
	steps := dt * 60
	settleEps := float32(cfg.Particles.SettleEpsilon)
	breathSpeed := float64(cfg.Particles.BreathSpeed)

	fadeFactor := float32(cfg.Particles.FadeRate) * steps
	if fadeFactor > 1 {
		fadeFactor = 1
	}

	radius := float32(cfg.Pointer.Radius)
	force := float32(cfg.Pointer.Force)

	query := e.filter.Query()
	for query.Next() {
		pos, vel, anchor, sprite, breath := query.Get()

		tx := e.centroid.X + anchor.OffsetX
		ty := e.centroid.Y + anchor.OffsetY

		// Idle breathing only once settled; skip the trig for particles
		// still in flight.
		if systems.AtRest(tx-pos.X, ty-pos.Y, vel.X, vel.Y, settleEps) {
			wobble := e.elapsed*breathSpeed + float64(breath.Phase)
			tx += float32(math.Cos(wobble)) * breath.Amplitude
			ty += float32(math.Sin(wobble)) * breath.Amplitude
		}

		if pointer.Active {
			ix, iy := systems.Repulse(pos.X, pos.Y, pointer.X, pointer.Y, radius, force)
			vel.X += ix * steps
			vel.Y += iy * steps
		}

		pos.X, pos.Y, vel.X, vel.Y = systems.SpringStep(
			pos.X, pos.Y, vel.X, vel.Y, tx, ty,
			anchor.Stiffness, anchor.Damping, dt,
		)

		sprite.Opacity += (sprite.TargetOpacity - sprite.Opacity) * fadeFactor
		if sprite.Opacity < 0 {
			sprite.Opacity = 0
		} else if sprite.Opacity > 1 {
			sprite.Opacity = 1
		}
	}
}

// stepReduced is the accessibility path: everything settles instantly and
// the contour field is frozen, so each frame is a static picture.
func (e *Engine) stepReduced(pointer systems.PointerState, dt float32) {
	e.centroid.Advance(pointer, dt)
	e.centroid.X, e.centroid.Y = e.centroid.TargetX, e.centroid.TargetY
	e.centroid.VelX, e.centroid.VelY = 0, 0

	query := e.filter.Query()
	for query.Next() {
		pos, vel, anchor, sprite, _ := query.Get()
		pos.X = e.centroid.X + anchor.OffsetX
		pos.Y = e.centroid.Y + anchor.OffsetY
		vel.X, vel.Y = 0, 0
		sprite.Opacity = sprite.TargetOpacity
	}

	if e.cfg.Contours.Enabled {
		// elapsed stays 0: the field never animates.
		e.extractContours()
	}
}

// extractContours refills the grid at the current animation time and runs
// one marching-squares pass per configured threshold, reusing the segment
// buffers.
func (e *Engine) extractContours() {
	t := e.elapsed * e.cfg.Contours.TimeSpeed
	e.grid.Fill(e.field, t)

	if len(e.contours) != len(e.cfg.Contours.Thresholds) {
		e.contours = make([][]systems.Segment, len(e.cfg.Contours.Thresholds))
	}
	for i, threshold := range e.cfg.Contours.Thresholds {
		e.contours[i] = systems.ExtractContours(e.grid, float32(threshold), e.contours[i][:0])
	}
}
