// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-vecmath/pkg/color"
	"github.com/opd-ai/go-vecmath/pkg/validation"
)

// AngleUnit selects how angles are reported.
type AngleUnit string

const (
	Degrees AngleUnit = "degrees"
	Radians AngleUnit = "radians"
)

// MaxPrecision is the largest number of decimals a float64 can usefully show.
const MaxPrecision = 17

// ErrUnknownColor is returned by Color for names missing from the palette.
var ErrUnknownColor = errors.New("unknown palette color")

// ToolConfig contains configuration for the vecclr tool
type ToolConfig struct {
	Precision int               `json:"precision" yaml:"precision"`
	AngleUnit AngleUnit         `json:"angleUnit" yaml:"angle_unit"`
	Palette   map[string]string `json:"palette" yaml:"palette"`
}

// LoadConfig loads a configuration from a JSON file, or a YAML file when
// the extension is .yaml or .yml. Fields missing from the file keep their
// default values and palette entries are merged over the default palette.
func LoadConfig(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := unmarshal(path, data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

func unmarshal(path string, data []byte, config *ToolConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	default:
		return json.Unmarshal(data, config)
	}
}

// LoadConfigFromEnv loads the file named by VECMATH_CONFIG, or the defaults
// when it is unset, and then applies VECMATH_PRECISION and
// VECMATH_ANGLE_UNIT on top.
func LoadConfigFromEnv() (*ToolConfig, error) {
	config := DefaultConfig()
	if path := os.Getenv("VECMATH_CONFIG"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if v := os.Getenv("VECMATH_PRECISION"); v != "" {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid VECMATH_PRECISION %q: %w", v, err)
		}
		config.Precision = p
	}
	if v := os.Getenv("VECMATH_ANGLE_UNIT"); v != "" {
		config.AngleUnit = AngleUnit(strings.ToLower(strings.TrimSpace(v)))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, as YAML when the extension
// is .yaml or .yml and as indented JSON otherwise.
func SaveConfig(config *ToolConfig, path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default tool configuration
func DefaultConfig() *ToolConfig {
	return &ToolConfig{
		Precision: 4,
		AngleUnit: Degrees,
		Palette: map[string]string{
			"black": "#000000",
			"white": "#FFFFFF",
			"red":   "#FF0000",
			"green": "#00FF00",
			"blue":  "#0000FF",
		},
	}
}

// Validate checks the precision range, the angle unit and every palette entry.
func (c *ToolConfig) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range (0-%d)", c.Precision, MaxPrecision)
	}

	switch c.AngleUnit {
	case Degrees, Radians:
	default:
		return fmt.Errorf("invalid angle unit %q (must be %q or %q)", c.AngleUnit, Degrees, Radians)
	}

	for name, hex := range c.Palette {
		if err := validation.ValidatePaletteName(name); err != nil {
			return err
		}
		if _, err := color.ParseHex(hex); err != nil {
			return fmt.Errorf("palette color %s: %w", name, err)
		}
	}

	return nil
}

// Color looks up a palette entry by name.
func (c *ToolConfig) Color(name string) (color.RGBA8, error) {
	hex, ok := c.Palette[name]
	if !ok {
		return color.RGBA8{}, fmt.Errorf("%w: %s", ErrUnknownColor, name)
	}
	return color.ParseHex(hex)
}

// FormatFloat formats f with the configured number of decimals.
func (c *ToolConfig) FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', c.Precision, 64)
}

// Angle converts an angle in degrees to the configured unit.
func (c *ToolConfig) Angle(deg float64) float64 {
	if c.AngleUnit == Radians {
		return deg * math.Pi / 180
	}
	return deg
}
