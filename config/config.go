// Package config provides configuration loading and access for the effect.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Centroid  CentroidConfig  `yaml:"centroid"`
	Contours  ContoursConfig  `yaml:"contours"`
	Render    RenderConfig    `yaml:"render"`
	Logo      LogoConfig      `yaml:"logo"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings for the demo host.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ParticlesConfig holds swarm creation and motion parameters.
type ParticlesConfig struct {
	Count           int     `yaml:"count"`            // target count when no mask dictates exact count
	SamplingDensity int     `yaml:"sampling_density"` // pixel stride when sampling the mask (higher = fewer particles)
	AlphaThreshold  int     `yaml:"alpha_threshold"`  // minimum mask alpha [0,255] to seed a particle
	SpringPreset    string  `yaml:"spring_preset"`    // snappy | smooth | bouncy | heavy
	FadeRate        float64 `yaml:"fade_rate"`        // opacity approach factor per 60Hz frame, (0,1]
	SettleEpsilon   float64 `yaml:"settle_epsilon"`   // displacement/speed below this counts as settled
	BreathSpeed     float64 `yaml:"breath_speed"`     // idle breathing oscillation speed, rad/s
}

// PointerConfig holds pointer repulsion parameters.
type PointerConfig struct {
	Radius float64 `yaml:"radius"` // influence radius in px; 0 disables repulsion
	Force  float64 `yaml:"force"`  // repulsion strength scalar
}

// CentroidConfig governs how eagerly the swarm follows the pointer.
// Tuned softer than the particle springs.
type CentroidConfig struct {
	SpringStrength float64 `yaml:"spring_strength"`
	Friction       float64 `yaml:"friction"`
}

// ContoursConfig holds noise field and iso-line extraction parameters.
type ContoursConfig struct {
	Enabled       bool      `yaml:"enabled"`
	GridCellSize  float64   `yaml:"grid_cell_size"` // px per grid cell
	Octaves       int       `yaml:"octaves"`        // fBm octaves
	BaseFrequency float64   `yaml:"base_frequency"` // noise frequency per px
	Lacunarity    float64   `yaml:"lacunarity"`     // frequency multiplier per octave
	Gain          float64   `yaml:"gain"`           // amplitude multiplier per octave
	TimeSpeed     float64   `yaml:"time_speed"`     // field-time units per second of animation
	Thresholds    []float64 `yaml:"thresholds"`     // iso-line levels, one extraction pass each
}

// RenderConfig holds visual settings.
type RenderConfig struct {
	ShowParticles bool    `yaml:"show_particles"`
	Background    []uint8 `yaml:"background"`    // RGB
	ContourColor  []uint8 `yaml:"contour_color"` // RGB
	ContourAlpha  float64 `yaml:"contour_alpha"` // [0,1]
}

// LogoConfig holds silhouette source settings.
type LogoConfig struct {
	Source        string  `yaml:"source"`          // path to an image with an alpha channel; empty = random scatter
	FitHeightFrac float64 `yaml:"fit_height_frac"` // fraction of surface height the silhouette occupies
}

// TelemetryConfig holds frame stats parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate rejects invalid parameter combinations. The engine calls this
// again on every config update, so reconfiguration cannot smuggle in values
// that construction would have refused.
func (c *Config) Validate() error {
	p := &c.Particles
	if p.Count < 0 {
		return fmt.Errorf("particles.count must be >= 0, got %d", p.Count)
	}
	if p.SamplingDensity < 1 {
		return fmt.Errorf("particles.sampling_density must be >= 1, got %d", p.SamplingDensity)
	}
	if p.AlphaThreshold < 0 || p.AlphaThreshold > 255 {
		return fmt.Errorf("particles.alpha_threshold must be in [0,255], got %d", p.AlphaThreshold)
	}
	switch p.SpringPreset {
	case "snappy", "smooth", "bouncy", "heavy":
	default:
		return fmt.Errorf("particles.spring_preset %q is not one of snappy, smooth, bouncy, heavy", p.SpringPreset)
	}
	if p.FadeRate <= 0 || p.FadeRate > 1 {
		return fmt.Errorf("particles.fade_rate must be in (0,1], got %g", p.FadeRate)
	}
	if p.SettleEpsilon <= 0 {
		return fmt.Errorf("particles.settle_epsilon must be > 0, got %g", p.SettleEpsilon)
	}

	if c.Pointer.Radius < 0 {
		return fmt.Errorf("pointer.radius must be >= 0, got %g", c.Pointer.Radius)
	}
	if c.Pointer.Force < 0 {
		return fmt.Errorf("pointer.force must be >= 0, got %g", c.Pointer.Force)
	}

	if c.Centroid.SpringStrength <= 0 {
		return fmt.Errorf("centroid.spring_strength must be > 0, got %g", c.Centroid.SpringStrength)
	}
	if c.Centroid.Friction <= 0 || c.Centroid.Friction >= 1 {
		return fmt.Errorf("centroid.friction must be in (0,1), got %g", c.Centroid.Friction)
	}

	ct := &c.Contours
	if ct.GridCellSize <= 0 {
		return fmt.Errorf("contours.grid_cell_size must be > 0, got %g", ct.GridCellSize)
	}
	if ct.Octaves < 1 {
		return fmt.Errorf("contours.octaves must be >= 1, got %d", ct.Octaves)
	}
	if ct.BaseFrequency <= 0 {
		return fmt.Errorf("contours.base_frequency must be > 0, got %g", ct.BaseFrequency)
	}
	if ct.Lacunarity <= 1 {
		return fmt.Errorf("contours.lacunarity must be > 1, got %g", ct.Lacunarity)
	}
	if ct.Gain <= 0 || ct.Gain > 1 {
		return fmt.Errorf("contours.gain must be in (0,1], got %g", ct.Gain)
	}
	if ct.Enabled && len(ct.Thresholds) == 0 {
		return fmt.Errorf("contours.thresholds must not be empty when contours are enabled")
	}

	if len(c.Render.Background) != 3 {
		return fmt.Errorf("render.background must be an RGB triple, got %d values", len(c.Render.Background))
	}
	if len(c.Render.ContourColor) != 3 {
		return fmt.Errorf("render.contour_color must be an RGB triple, got %d values", len(c.Render.ContourColor))
	}
	if c.Render.ContourAlpha < 0 || c.Render.ContourAlpha > 1 {
		return fmt.Errorf("render.contour_alpha must be in [0,1], got %g", c.Render.ContourAlpha)
	}

	if c.Logo.FitHeightFrac <= 0 || c.Logo.FitHeightFrac > 1 {
		return fmt.Errorf("logo.fit_height_frac must be in (0,1], got %g", c.Logo.FitHeightFrac)
	}

	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window must be > 0, got %g", c.Telemetry.StatsWindow)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Contours.Thresholds = append([]float64(nil), c.Contours.Thresholds...)
	out.Render.Background = append([]uint8(nil), c.Render.Background...)
	out.Render.ContourColor = append([]uint8(nil), c.Render.ContourColor...)
	return &out
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
