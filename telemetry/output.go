package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/drift/config"
)

// FrameWindow is one aggregated stats row written to frames.csv.
type FrameWindow struct {
	WindowEndSec float64 `csv:"window_end_s"`
	FPS          float64 `csv:"fps"`
	FrameMsP50   float64 `csv:"frame_ms_p50"`
	FrameMsP90   float64 `csv:"frame_ms_p90"`
	FrameMsP99   float64 `csv:"frame_ms_p99"`
	Particles    int     `csv:"particles"`
	Contours     int     `csv:"contour_segments"`
}

// OutputManager handles structured run output: a frames.csv log and a
// snapshot of the effective config.
type OutputManager struct {
	dir        string
	framesFile *os.File

	headerWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil if
// dir is empty (output disabled); a nil manager is safe to call.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	framesPath := filepath.Join(dir, "frames.csv")
	f, err := os.Create(framesPath)
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &OutputManager{dir: dir, framesFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrameWindow appends a stats row to frames.csv.
func (om *OutputManager) WriteFrameWindow(w FrameWindow) error {
	if om == nil {
		return nil
	}

	records := []FrameWindow{w}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame window: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
		return fmt.Errorf("writing frame window: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.framesFile == nil {
		return nil
	}
	return om.framesFile.Close()
}
