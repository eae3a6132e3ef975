package systems

import (
	"fmt"
	"math"
	"math/rand"
)

// Spring constants are tuned against a 1/60s reference step. SpringStep
// scales the restoring force by dt*60 and applies damping as damping^(dt*60)
// so the motion looks the same from 30Hz to 144Hz. Damping here is a
// per-step velocity multiplier in (0,1), not a physical damping coefficient.

// SpringAxis advances one axis of a damped spring toward target.
func SpringAxis(pos, vel, target, stiffness, damping, dt float32) (float32, float32) {
	steps := dt * 60
	force := (target - pos) * stiffness * steps
	vel = (vel + force) * float32(math.Pow(float64(damping), float64(steps)))
	pos += vel
	return pos, vel
}

// SpringStep advances a 2D point toward target under the damped-spring law.
func SpringStep(px, py, vx, vy, tx, ty, stiffness, damping, dt float32) (npx, npy, nvx, nvy float32) {
	npx, nvx = SpringAxis(px, vx, tx, stiffness, damping, dt)
	npy, nvy = SpringAxis(py, vy, ty, stiffness, damping, dt)
	return npx, npy, nvx, nvy
}

// AtRest reports whether displacement and velocity are both below eps.
// Callers treat a resting spring as settled; the integrator never forces
// position or velocity to zero.
func AtRest(dx, dy, vx, vy, eps float32) bool {
	return dx*dx+dy*dy < eps*eps && vx*vx+vy*vy < eps*eps
}

// SpringPreset is a stiffness/damping/breath tuple selected by name.
// Jitter is the half-width of the uniform band each particle's constants
// are drawn from, as a fraction of the base value.
type SpringPreset struct {
	Stiffness float32
	Damping   float32
	Jitter    float32
	BreathAmp float32
}

var springPresets = map[string]SpringPreset{
	"snappy": {Stiffness: 0.22, Damping: 0.70, Jitter: 0.15, BreathAmp: 1.2},
	"smooth": {Stiffness: 0.10, Damping: 0.85, Jitter: 0.15, BreathAmp: 2.0},
	"bouncy": {Stiffness: 0.16, Damping: 0.93, Jitter: 0.20, BreathAmp: 2.5},
	"heavy":  {Stiffness: 0.045, Damping: 0.90, Jitter: 0.10, BreathAmp: 1.5},
}

// PresetByName returns the spring preset for the given name.
func PresetByName(name string) (SpringPreset, error) {
	p, ok := springPresets[name]
	if !ok {
		return SpringPreset{}, fmt.Errorf("unknown spring preset %q", name)
	}
	return p, nil
}

// PresetNames returns the known preset names, for tests and tooling.
func PresetNames() []string {
	return []string{"snappy", "smooth", "bouncy", "heavy"}
}

// Sample draws per-particle stiffness and damping from the preset's jitter
// band. Damping is clamped below 1 so every particle stays convergent.
func (p SpringPreset) Sample(rng *rand.Rand) (stiffness, damping float32) {
	jitter := func(base float32) float32 {
		return base * (1 + (rng.Float32()*2-1)*p.Jitter)
	}
	stiffness = jitter(p.Stiffness)
	damping = jitter(p.Damping)
	if damping >= 0.99 {
		damping = 0.99
	}
	return stiffness, damping
}
