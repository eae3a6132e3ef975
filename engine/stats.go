package engine

// Stats is the read-only snapshot exposed to the host HUD and telemetry.
type Stats struct {
	FPS           float64
	Particles     int
	GridCells     int
	Paused        bool
	ReducedMotion bool
	State         string
}

// Stats returns current runtime statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		FPS:           e.frames.FPS(),
		Particles:     e.particleCount,
		GridCells:     e.grid.Cols * e.grid.Rows,
		Paused:        e.state != stateRunning,
		ReducedMotion: e.reducedMotion,
		State:         e.centroid.State().String(),
	}
}

// FrameMillisQuantile returns the p-quantile of recent frame times in
// milliseconds, for telemetry windows.
func (e *Engine) FrameMillisQuantile(p float64) float64 {
	return e.frames.MillisQuantile(p)
}
