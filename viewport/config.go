package viewport

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Range describes a slider: closed interval, step and initial value.
type Range struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// Clamp constrains v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) validate(name string) error {
	switch {
	case !(r.Min < r.Max):
		return fmt.Errorf("%w: %s: min %g must be less than max %g", ErrInvalidConfig, name, r.Min, r.Max)
	case r.Step <= 0:
		return fmt.Errorf("%w: %s: step must be positive", ErrInvalidConfig, name)
	case r.Default < r.Min || r.Max < r.Default:
		return fmt.Errorf("%w: %s: default %g out of [%g, %g]", ErrInvalidConfig, name, r.Default, r.Min, r.Max)
	}
	return nil
}

// Config holds viewer settings loaded from config.yaml.
type Config struct {
	Distance     Range   `yaml:"distance"`
	FocalLength  Range   `yaml:"focal_length"`
	ScrollFactor float64 `yaml:"scroll_factor"`
	RotationStep float64 `yaml:"rotation_step"`
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	CubeSize     float64 `yaml:"cube_size"`
	CubeColor    uint32  `yaml:"cube_color"`
	Background   uint32  `yaml:"background"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Distance: Range{
			Min: 1, Max: 10, Step: 0.01, Default: 5,
		},
		FocalLength: Range{
			Min: 1, Max: 100, Step: 1, Default: 75,
		},
		ScrollFactor: 0.01,
		RotationStep: 0.01,
		Near:         0.1,
		Far:          1000,
		CubeSize:     1,
		CubeColor:    0x00ff00,
		Background:   0x000000,
	}
}

// Validate checks ranges and camera clipping planes.
func (c Config) Validate() error {
	if err := c.Distance.validate("distance"); err != nil {
		return err
	}
	if err := c.FocalLength.validate("focal_length"); err != nil {
		return err
	}
	if c.Distance.Min <= 0 {
		return fmt.Errorf("%w: distance: min must be positive", ErrInvalidConfig)
	}
	// Focal length is used as field of view in degrees.
	if c.FocalLength.Min <= 0 || c.FocalLength.Max >= 180 {
		return fmt.Errorf("%w: focal_length: must be within (0, 180)", ErrInvalidConfig)
	}
	if c.FocalLength.Min != math.Trunc(c.FocalLength.Min) || c.FocalLength.Max != math.Trunc(c.FocalLength.Max) {
		return fmt.Errorf("%w: focal_length: min and max must be integers", ErrInvalidConfig)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%w: near %g and far %g must satisfy 0 < near < far", ErrInvalidConfig, c.Near, c.Far)
	}
	if c.CubeSize <= 0 {
		return fmt.Errorf("%w: cube_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Keys absent from b keep their default values.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// RGB returns the color components in [0, 1].
func RGB(c uint32) (r, g, b float32) {
	return float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255
}
