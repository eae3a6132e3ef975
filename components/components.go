// Package components defines the ECS components that make up a particle.
package components

// Position is the current render location in surface px.
type Position struct {
	X, Y float32
}

// Velocity is the current momentum in px per 60Hz step. It is never zeroed
// by retargeting; only the integrator's damping decays it.
type Velocity struct {
	X, Y float32
}

// Anchor fixes a particle to the swarm. The offset from the shared centroid
// is set once at seeding from the mask sample and never changes; the live
// target is centroid + offset. Stiffness and damping are sampled from a
// narrow band around the configured preset so the swarm doesn't move in
// lockstep.
type Anchor struct {
	OffsetX, OffsetY float32
	Stiffness        float32
	Damping          float32
}

// Sprite holds the visual attributes sampled from the source pixel, plus
// the fade state. Opacity is low-pass filtered toward TargetOpacity each
// frame; TargetOpacity only changes on interactive-zone enter/leave.
type Sprite struct {
	Size          float32
	R, G, B       uint8
	Opacity       float32
	TargetOpacity float32
}

// Breath is the idle oscillation applied to the effective target once a
// particle has settled. Purely cosmetic; the stored anchor is untouched.
type Breath struct {
	Phase     float32
	Amplitude float32
}
