// Package validation provides input validation for vecclr command-line
// arguments and configuration keys.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input size limits
const (
	MaxComponentsLen  = 256
	MaxPaletteNameLen = 32
)

// Commands lists the operations vecclr understands.
var Commands = []string{
	"dot", "cross", "normalize", "length", "distance",
	"lerp", "angle", "pack", "unpack", "hex",
}

// Palette names start with a letter and continue with letters, digits,
// hyphens or underscores.
var validPaletteName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_\-]*$`)

// ParseComponents parses exactly n comma separated numbers, such as "1,2,3".
// NaN and infinite components are rejected.
func ParseComponents(s string, n int) ([]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("components cannot be empty")
	}
	if len(s) > MaxComponentsLen {
		return nil, fmt.Errorf("components too long: %d characters (max %d)", len(s), MaxComponentsLen)
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("components contain invalid UTF-8 characters")
	}

	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d components, got %d in %q", n, len(fields), s)
	}

	out := make([]float64, n)
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("component %d is not finite: %v", i, f)
		}
		out[i] = f
	}
	return out, nil
}

// ValidatePaletteName checks a palette key from the configuration file.
func ValidatePaletteName(name string) error {
	if name == "" {
		return fmt.Errorf("palette name cannot be empty")
	}
	if len(name) > MaxPaletteNameLen {
		return fmt.Errorf("palette name too long: %d characters (max %d)", len(name), MaxPaletteNameLen)
	}
	if !validPaletteName.MatchString(name) {
		return fmt.Errorf("palette name %q contains invalid characters (letters, digits, hyphens and underscores allowed)", name)
	}
	return nil
}

// ValidateCommand reports an error unless cmd is one of Commands.
func ValidateCommand(cmd string) error {
	if cmd == "" {
		return fmt.Errorf("command cannot be empty")
	}
	if !slices.Contains(Commands, cmd) {
		return fmt.Errorf("unknown command %q (must be one of %s)", cmd, strings.Join(Commands, ", "))
	}
	return nil
}
