package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/drift/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// A nil manager is safe for every call.
	if err := om.WriteFrameWindow(FrameWindow{}); err != nil {
		t.Errorf("nil WriteFrameWindow: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("nil WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir = %q", om.Dir())
	}
}

func TestOutputManagerWritesFrameWindows(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	rows := []FrameWindow{
		{WindowEndSec: 5, FPS: 60.1, FrameMsP50: 16.2, FrameMsP90: 17.0, FrameMsP99: 21.5, Particles: 500, Contours: 120},
		{WindowEndSec: 10, FPS: 59.8, FrameMsP50: 16.4, FrameMsP90: 17.3, FrameMsP99: 30.0, Particles: 500, Contours: 133},
	}
	for _, r := range rows {
		if err := om.WriteFrameWindow(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("frames.csv has %d lines, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "window_end_s") || !strings.Contains(lines[0], "fps") {
		t.Errorf("missing header fields: %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end_s") {
		t.Error("header repeated on subsequent rows")
	}
	if !strings.Contains(lines[2], "133") {
		t.Errorf("second row missing contour count: %q", lines[2])
	}
}

func TestOutputManagerWritesConfigSnapshot(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "spring_preset: smooth") {
		t.Errorf("config snapshot missing expected field:\n%s", data)
	}
}
