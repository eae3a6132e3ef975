package telemetry

import (
	"math"
	"testing"
)

func TestFrameStatsEmpty(t *testing.T) {
	f := NewFrameStats(120)
	if fps := f.FPS(); fps != 0 {
		t.Errorf("FPS with no samples = %f, want 0", fps)
	}
	if q := f.MillisQuantile(0.5); q != 0 {
		t.Errorf("quantile with no samples = %f, want 0", q)
	}
}

func TestFrameStatsFPS(t *testing.T) {
	f := NewFrameStats(120)
	for i := 0; i < 60; i++ {
		f.Record(1.0 / 60.0)
	}
	if fps := f.FPS(); math.Abs(fps-60) > 0.01 {
		t.Errorf("FPS = %f, want 60", fps)
	}
}

func TestFrameStatsWindowEvictsOldest(t *testing.T) {
	f := NewFrameStats(10)
	// Ten slow frames, then ten fast ones push them all out.
	for i := 0; i < 10; i++ {
		f.Record(0.1)
	}
	for i := 0; i < 10; i++ {
		f.Record(0.01)
	}
	if f.Len() != 10 {
		t.Fatalf("window length = %d, want 10", f.Len())
	}
	if fps := f.FPS(); math.Abs(fps-100) > 0.01 {
		t.Errorf("FPS after eviction = %f, want 100", fps)
	}
}

func TestFrameStatsIgnoresNonPositive(t *testing.T) {
	f := NewFrameStats(10)
	f.Record(0)
	f.Record(-1)
	if f.Len() != 0 {
		t.Errorf("non-positive samples were recorded: len = %d", f.Len())
	}
}

func TestFrameStatsQuantiles(t *testing.T) {
	f := NewFrameStats(100)
	// 90 fast frames and 10 slow spikes.
	for i := 0; i < 90; i++ {
		f.Record(0.010)
	}
	for i := 0; i < 10; i++ {
		f.Record(0.050)
	}

	p50 := f.MillisQuantile(0.50)
	if math.Abs(p50-10) > 0.01 {
		t.Errorf("p50 = %f ms, want 10", p50)
	}
	p99 := f.MillisQuantile(0.99)
	if math.Abs(p99-50) > 0.01 {
		t.Errorf("p99 = %f ms, want 50", p99)
	}
	if p90 := f.MillisQuantile(0.90); p90 > p99+1e-9 {
		t.Errorf("p90 (%f) exceeds p99 (%f)", p90, p99)
	}
}

func TestFrameStatsQuantileDoesNotReorderWindow(t *testing.T) {
	f := NewFrameStats(10)
	f.Record(0.03)
	f.Record(0.01)
	f.Record(0.02)
	f.MillisQuantile(0.5)

	if f.samples[0] != 0.03 || f.samples[1] != 0.01 || f.samples[2] != 0.02 {
		t.Errorf("quantile computation mutated sample order: %v", f.samples)
	}
}
