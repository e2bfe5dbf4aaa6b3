package viewport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected func() Config
		err      error
	}{
		"Empty": {
			input:    "",
			expected: DefaultConfig,
		},
		"Partial": {
			input: "scroll_factor: 0.02\ndistance:\n  max: 20\n",
			expected: func() Config {
				c := DefaultConfig()
				c.ScrollFactor = 0.02
				c.Distance.Max = 20
				return c
			},
		},
		"Color": {
			input: "cube_color: 0xff0000\nbackground: 0x101010\n",
			expected: func() Config {
				c := DefaultConfig()
				c.CubeColor = 0xff0000
				c.Background = 0x101010
				return c
			},
		},
		"DefaultOutOfRange": {
			input: "focal_length:\n  default: 150\n",
			err:   ErrInvalidConfig,
		},
		"InvertedRange": {
			input: "distance:\n  min: 10\n  max: 1\n",
			err:   ErrInvalidConfig,
		},
		"WideFOV": {
			input: "focal_length:\n  max: 180\n",
			err:   ErrInvalidConfig,
		},
		"FractionalFocalLengthMin": {
			input: "focal_length:\n  min: 0.5\n",
			err:   ErrInvalidConfig,
		},
		"FractionalFocalLengthMax": {
			input: "focal_length:\n  max: 99.5\n",
			err:   ErrInvalidConfig,
		},
		"ZeroDistance": {
			input: "distance:\n  min: 0\n",
			err:   ErrInvalidConfig,
		},
		"ClippingPlanes": {
			input: "near: 10\nfar: 1\n",
			err:   ErrInvalidConfig,
		},
		"Syntax": {
			input: "distance: [",
			err:   ErrInvalidConfig,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.input))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected error: %v, got: %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if expected := tt.expected(); c != expected {
				t.Errorf("Expected: %+v, got: %+v", expected, c)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rotation_step: 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.RotationStep != 0.05 {
		t.Errorf("Expected: 0.05, got: %f", c.RotationStep)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not exist error, got: %v", err)
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(0x00ff00)
	if r != 0 || g != 1 || b != 0 {
		t.Errorf("Expected (0, 1, 0), got (%f, %f, %f)", r, g, b)
	}
}
