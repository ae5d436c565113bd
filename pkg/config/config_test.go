package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-vecmath/pkg/color"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NotNil(t, config)

	assert.Equal(t, 4, config.Precision)
	assert.Equal(t, Degrees, config.AngleUnit)
	assert.Len(t, config.Palette, 5)
	assert.Equal(t, "#FF0000", config.Palette["red"])
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *ToolConfig)
		errContains string
	}{
		{"defaults", func(c *ToolConfig) {}, ""},
		{"radians", func(c *ToolConfig) { c.AngleUnit = Radians }, ""},
		{"zero precision", func(c *ToolConfig) { c.Precision = 0 }, ""},
		{"negative precision", func(c *ToolConfig) { c.Precision = -1 }, "out of range"},
		{"large precision", func(c *ToolConfig) { c.Precision = MaxPrecision + 1 }, "out of range"},
		{"bad unit", func(c *ToolConfig) { c.AngleUnit = "turns" }, "invalid angle unit"},
		{"bad palette name", func(c *ToolConfig) { c.Palette["sky blue"] = "#87CEEB" }, "invalid characters"},
		{"bad palette hex", func(c *ToolConfig) { c.Palette["sky"] = "#87CE" }, "palette color sky"},
		{"nil palette", func(c *ToolConfig) { c.Palette = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateWrapsHexError(t *testing.T) {
	config := DefaultConfig()
	config.Palette["sky"] = "nothex"
	assert.ErrorIs(t, config.Validate(), color.ErrInvalidHex)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecmath.json")

	original := DefaultConfig()
	original.Precision = 2
	original.AngleUnit = Radians
	original.Palette["orange"] = "#FF8000"

	require.NoError(t, SaveConfig(original, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecmath.yaml")

	original := DefaultConfig()
	original.Precision = 3
	original.Palette["teal"] = "#008080"

	require.NoError(t, SaveConfig(original, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "angle_unit: degrees")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadConfigYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecmath.yml")
	require.NoError(t, os.WriteFile(path, []byte("angle_unit: radians\npalette:\n  orange: \"#FF8000\"\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, config.Precision)
	assert.Equal(t, Radians, config.AngleUnit)
	assert.Equal(t, "#FF8000", config.Palette["orange"])
	assert.Equal(t, "#0000FF", config.Palette["blue"])
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"precision": 6, "palette": {"orange": "#FF8000"}}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, config.Precision)
	assert.Equal(t, Degrees, config.AngleUnit)
	assert.Equal(t, "#FF8000", config.Palette["orange"])
	assert.Equal(t, "#FF0000", config.Palette["red"])
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"precision":`), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"precision": 99}`), 0o644))
	_, err = LoadConfig(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Setenv("VECMATH_CONFIG", "")
		t.Setenv("VECMATH_PRECISION", "")
		t.Setenv("VECMATH_ANGLE_UNIT", "")

		config, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("Overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vecmath.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"precision": 1}`), 0o644))

		t.Setenv("VECMATH_CONFIG", path)
		t.Setenv("VECMATH_PRECISION", " 8 ")
		t.Setenv("VECMATH_ANGLE_UNIT", "Radians")

		config, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 8, config.Precision)
		assert.Equal(t, Radians, config.AngleUnit)
	})

	t.Run("InvalidPrecision", func(t *testing.T) {
		t.Setenv("VECMATH_CONFIG", "")
		t.Setenv("VECMATH_PRECISION", "many")
		t.Setenv("VECMATH_ANGLE_UNIT", "")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VECMATH_PRECISION")
	})

	t.Run("InvalidUnit", func(t *testing.T) {
		t.Setenv("VECMATH_CONFIG", "")
		t.Setenv("VECMATH_PRECISION", "")
		t.Setenv("VECMATH_ANGLE_UNIT", "grad")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment configuration")
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Setenv("VECMATH_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
		t.Setenv("VECMATH_PRECISION", "")
		t.Setenv("VECMATH_ANGLE_UNIT", "")

		_, err := LoadConfigFromEnv()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestColor(t *testing.T) {
	config := DefaultConfig()

	red, err := config.Color("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA8{R: 255, A: 255}, red)

	_, err = config.Color("mauve")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestFormatFloatAndAngle(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "3.1416", config.FormatFloat(math.Pi))
	assert.Equal(t, 90.0, config.Angle(90))

	config.Precision = 0
	config.AngleUnit = Radians
	assert.Equal(t, "3", config.FormatFloat(math.Pi))
	assert.InDelta(t, math.Pi/2, config.Angle(90), 1e-12)
}
