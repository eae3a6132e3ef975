// Package renderer draws the effect with raylib. It consumes read-only
// engine snapshots and never mutates simulation state.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParticleSource yields the visible particles for one frame.
type ParticleSource interface {
	EachParticle(fn func(x, y, size float32, r, g, b uint8, opacity float32))
}

// DrawParticles renders the swarm as soft additive-blended dots. A faint
// halo behind each core dot keeps dense silhouettes from reading as flat
// fill.
func DrawParticles(src ParticleSource) {
	rl.BeginBlendMode(rl.BlendAdditive)

	src.EachParticle(func(x, y, size float32, r, g, b uint8, opacity float32) {
		core := rl.Color{R: r, G: g, B: b, A: uint8(opacity * 255)}
		halo := rl.Color{R: r, G: g, B: b, A: uint8(opacity * 60)}

		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size*2.2, halo)
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size, core)
	})

	rl.EndBlendMode()
}
