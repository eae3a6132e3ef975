// Package telemetry collects frame statistics and writes structured
// experiment output.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats is a rolling window of frame durations (seconds).
type FrameStats struct {
	samples    []float64
	maxSamples int
	scratch    []float64
}

// NewFrameStats creates a tracker keeping the last maxSamples frames
// (~2 seconds at 60fps with 120).
func NewFrameStats(maxSamples int) *FrameStats {
	if maxSamples < 1 {
		maxSamples = 1
	}
	return &FrameStats{
		samples:    make([]float64, 0, maxSamples),
		maxSamples: maxSamples,
	}
}

// Record adds a frame duration sample.
func (f *FrameStats) Record(dt float64) {
	if dt <= 0 {
		return
	}
	f.samples = append(f.samples, dt)
	if len(f.samples) > f.maxSamples {
		f.samples = f.samples[1:]
	}
}

// FPS returns the framerate implied by the mean frame time, or 0 with no
// samples.
func (f *FrameStats) FPS() float64 {
	if len(f.samples) == 0 {
		return 0
	}
	mean := stat.Mean(f.samples, nil)
	if mean <= 0 {
		return 0
	}
	return 1 / mean
}

// MillisQuantile returns the p-quantile of frame times in milliseconds.
// p is in [0,1].
func (f *FrameStats) MillisQuantile(p float64) float64 {
	if len(f.samples) == 0 {
		return 0
	}
	f.scratch = append(f.scratch[:0], f.samples...)
	sort.Float64s(f.scratch)
	return stat.Quantile(p, stat.Empirical, f.scratch, nil) * 1000
}

// Len returns the number of recorded samples.
func (f *FrameStats) Len() int { return len(f.samples) }
