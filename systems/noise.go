package systems

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseField is a seeded, animated scalar field composited from several
// octaves of OpenSimplex noise (standard fBm summation). The sum is
// normalized by total amplitude so Sample stays in roughly [-1,1]
// regardless of octave count. Each field owns its generator; there is no
// package-level noise state, so independent effect instances never share
// a seed.
type NoiseField struct {
	noise opensimplex.Noise

	Octaves       int
	BaseFrequency float64 // frequency per surface px
	Lacunarity    float64 // frequency multiplier per octave
	Gain          float64 // amplitude multiplier per octave
}

// NewNoiseField creates a seeded fBm field.
func NewNoiseField(seed int64, octaves int, baseFrequency, lacunarity, gain float64) *NoiseField {
	return &NoiseField{
		noise:         opensimplex.New(seed),
		Octaves:       octaves,
		BaseFrequency: baseFrequency,
		Lacunarity:    lacunarity,
		Gain:          gain,
	}
}

// Sample returns the field value at surface coordinates (x, y) and
// animation time t (field-time units, typically elapsed seconds scaled by
// the configured time speed).
func (f *NoiseField) Sample(x, y, t float64) float64 {
	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := f.BaseFrequency

	for o := 0; o < f.Octaves; o++ {
		sum += amp * f.noise.Eval3(x*freq, y*freq, t)
		norm += amp
		freq *= f.Lacunarity
		amp *= f.Gain
	}

	return sum / norm
}
