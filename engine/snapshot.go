package engine

import "github.com/pthm-cable/drift/systems"

// PointerMoved records a pointer/touch position in surface coordinates.
// The simulation only sees it at the next Step.
func (e *Engine) PointerMoved(x, y float32) {
	e.pointer.Move(x, y)
}

// PointerLeft marks the pointer inactive (left the surface, touch ended).
func (e *Engine) PointerLeft() {
	e.pointer.Leave()
}

// AddZone registers an interactive zone; the swarm fades out while the
// pointer is inside any zone.
func (e *Engine) AddZone(z systems.Zone) {
	e.pointer.AddZone(z)
}

// ClearZones removes all interactive zones.
func (e *Engine) ClearZones() {
	e.pointer.ClearZones()
}

// EachParticle visits every visible particle with its render attributes.
// Fully transparent particles are skipped.
func (e *Engine) EachParticle(fn func(x, y, size float32, r, g, b uint8, opacity float32)) {
	if !e.cfg.Render.ShowParticles {
		return
	}
	query := e.filter.Query()
	for query.Next() {
		pos, _, _, sprite, _ := query.Get()
		if sprite.Opacity < 0.004 {
			continue
		}
		fn(pos.X, pos.Y, sprite.Size, sprite.R, sprite.G, sprite.B, sprite.Opacity)
	}
}

// ContourLines returns the per-threshold segment sets from the last
// extraction. The slices are owned by the engine and valid until the next
// Step; callers must not retain or mutate them.
func (e *Engine) ContourLines() [][]systems.Segment {
	if !e.cfg.Contours.Enabled {
		return nil
	}
	return e.contours
}

// CentroidPos returns the swarm centroid, for debug overlays.
func (e *Engine) CentroidPos() (x, y float32) {
	return e.centroid.X, e.centroid.Y
}
