package systems

import "math"

// repulseEpsilon keeps the falloff denominator away from zero when the
// pointer sits exactly on a particle.
const repulseEpsilon = 1e-3

// Repulse returns the velocity impulse pushing a particle at (px, py) away
// from the pointer at (cx, cy). Falloff is quadratic in the normalized
// distance: strength * (1 - d/radius)^2, along the unit vector from
// pointer to particle. Outside the radius the impulse is zero; the spring
// pulls strays back, so no gradual zeroing is needed. At zero distance the
// impulse is bounded and deterministic (pushed along +x).
func Repulse(px, py, cx, cy, radius, strength float32) (ix, iy float32) {
	if radius <= 0 || strength == 0 {
		return 0, 0
	}

	dx := px - cx
	dy := py - cy
	distSq := dx*dx + dy*dy
	if distSq >= radius*radius {
		return 0, 0
	}

	dist := float32(math.Sqrt(float64(distSq)))
	falloff := 1 - dist/radius
	mag := strength * falloff * falloff

	if dist < repulseEpsilon {
		return mag, 0
	}
	return mag * dx / dist, mag * dy / dist
}
