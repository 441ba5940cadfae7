// Package config provides configuration loading and access for the
// terrain and hydrology pipeline.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all pipeline configuration parameters.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Elevation   ElevationConfig   `yaml:"elevation"`
	Temperature TemperatureConfig `yaml:"temperature"`
	Moisture    MoistureConfig    `yaml:"moisture"`
	Wind        WindConfig        `yaml:"wind"`
	Hydrology   HydrologyConfig   `yaml:"hydrology"`
	Scatter     ScatterConfig     `yaml:"scatter"`
}

// WorldConfig holds grid dimensions and the sample window origin.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	XStart int `yaml:"x_start"` // noise window origin, lets chunks line up
	YStart int `yaml:"y_start"`
}

// ElevationConfig holds elevation noise parameters.
type ElevationConfig struct {
	Scale        float64 `yaml:"scale"`         // base noise scale, halves per octave
	Octaves      int     `yaml:"octaves"`       // noise layers
	Persistence  float64 `yaml:"persistence"`   // amplitude multiplier per octave
	MinElevation float64 `yaml:"min_elevation"` // rescale floor
	MaxElevation float64 `yaml:"max_elevation"` // rescale ceiling
}

// TemperatureConfig holds temperature synthesis parameters.
type TemperatureConfig struct {
	Scale       float64 `yaml:"scale"`
	EquatorY    int     `yaml:"equator_y"`    // grid row of the equator
	MaxLatitude float64 `yaml:"max_latitude"` // rows at which the latitude term bottoms out
	MinTemp     float64 `yaml:"min_temp"`
	MaxTemp     float64 `yaml:"max_temp"`
	NoiseScale  float64 `yaml:"noise_scale"` // fraction of the range driven by noise
	LapseRate   float64 `yaml:"lapse_rate"`  // cooling per elevation unit
}

// MoistureConfig holds moisture noise parameters.
type MoistureConfig struct {
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

// WindConfig holds wind adjustment parameters.
type WindConfig struct {
	HighElevation float64 `yaml:"high_elevation"` // threshold for diverting wind around terrain
}

// HydrologyConfig holds the river/lake synthesis parameters. The hydro
// package mandates no defaults of its own; these come from defaults.yaml or
// the user's file.
type HydrologyConfig struct {
	WaterLevel       float64 `yaml:"water_level"`       // submersion threshold
	SourcePercentile float64 `yaml:"source_percentile"` // 0-100
	LakeDepth        float64 `yaml:"lake_depth"`        // >= 0
	MaxGradient      float64 `yaml:"max_gradient"`      // >= 0
}

// ScatterConfig holds point sampling and graph parameters.
type ScatterConfig struct {
	Radius float64 `yaml:"radius"` // minimum distance between sampled points
	K      int     `yaml:"k"`      // candidates per active point
	Cycles int     `yaml:"cycles"` // extra non-tree edges
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated
// before it is returned.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

// Validate rejects configurations that would produce undefined numeric
// results downstream.
func (c *Config) Validate() error {
	if c.World.Width < 0 || c.World.Height < 0 {
		return fmt.Errorf("config: negative world dimensions %dx%d", c.World.Width, c.World.Height)
	}
	if c.Elevation.Octaves < 1 {
		return fmt.Errorf("config: elevation octaves %d < 1", c.Elevation.Octaves)
	}
	if c.Elevation.Scale <= 0 {
		return fmt.Errorf("config: elevation scale %v must be positive", c.Elevation.Scale)
	}
	if c.Moisture.Octaves < 1 {
		return fmt.Errorf("config: moisture octaves %d < 1", c.Moisture.Octaves)
	}
	if p := c.Hydrology.SourcePercentile; p < 0 || p > 100 {
		return fmt.Errorf("config: source percentile %v outside [0, 100]", p)
	}
	if c.Hydrology.LakeDepth < 0 {
		return fmt.Errorf("config: negative lake depth %v", c.Hydrology.LakeDepth)
	}
	if c.Hydrology.MaxGradient < 0 {
		return fmt.Errorf("config: negative max gradient %v", c.Hydrology.MaxGradient)
	}
	if c.Scatter.Radius <= 0 {
		return fmt.Errorf("config: scatter radius %v must be positive", c.Scatter.Radius)
	}
	if c.Scatter.K < 1 {
		return fmt.Errorf("config: scatter k %d < 1", c.Scatter.K)
	}
	return nil
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
