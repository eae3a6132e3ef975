package systems

import (
	"fmt"
	"image"
	"io"
	"math/rand"

	_ "image/jpeg"
	_ "image/png"
)

// MaskSample seeds one particle: a fixed offset from the silhouette
// centroid in source px, plus the visual attributes of the source pixel.
type MaskSample struct {
	OffsetX, OffsetY float32
	R, G, B          uint8
	Size             float32
}

// SampleMask decodes an image and samples opaque pixels into particle
// seeds. density is the pixel stride (>=1, higher = fewer particles);
// alphaThreshold is the minimum alpha [0,255] for a pixel to seed a
// particle. Offsets are relative to the mean position of the sampled
// pixels, so the seeds reassemble the silhouette around any centroid.
func SampleMask(r io.Reader, density int, alphaThreshold uint8) ([]MaskSample, error) {
	if density < 1 {
		return nil, fmt.Errorf("sampling density must be >= 1, got %d", density)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mask image: %w", err)
	}

	bounds := img.Bounds()
	var samples []MaskSample
	var sumX, sumY float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y += density {
		for x := bounds.Min.X; x < bounds.Max.X; x += density {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			a := uint8(a16 >> 8)
			if a < alphaThreshold {
				continue
			}
			samples = append(samples, MaskSample{
				OffsetX: float32(x),
				OffsetY: float32(y),
				R:       uint8(r16 >> 8),
				G:       uint8(g16 >> 8),
				B:       uint8(b16 >> 8),
				Size:    1 + 1.5*float32(a)/255,
			})
			sumX += float64(x)
			sumY += float64(y)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("mask has no pixels above alpha threshold %d", alphaThreshold)
	}

	cx := float32(sumX / float64(len(samples)))
	cy := float32(sumY / float64(len(samples)))
	for i := range samples {
		samples[i].OffsetX -= cx
		samples[i].OffsetY -= cy
	}
	return samples, nil
}

// MaskExtent returns the largest absolute offset coordinate, used to scale
// a silhouette to fit the surface.
func MaskExtent(samples []MaskSample) (maxX, maxY float32) {
	for _, s := range samples {
		if v := abs32(s.OffsetX); v > maxX {
			maxX = v
		}
		if v := abs32(s.OffsetY); v > maxY {
			maxY = v
		}
	}
	return maxX, maxY
}

// RandomScatter is the degraded seeding used when no mask is configured or
// its load failed: count seeds spread uniformly over a w x h surface,
// offsets relative to its center.
func RandomScatter(count int, w, h float32, rng *rand.Rand) []MaskSample {
	samples := make([]MaskSample, count)
	for i := range samples {
		shade := uint8(150 + rng.Intn(100))
		samples[i] = MaskSample{
			OffsetX: (rng.Float32() - 0.5) * w,
			OffsetY: (rng.Float32() - 0.5) * h,
			R:       shade,
			G:       shade,
			B:       uint8(170 + rng.Intn(85)),
			Size:    1 + rng.Float32()*1.5,
		}
	}
	return samples
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
