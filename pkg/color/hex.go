package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB or #RRGGBBAA color.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional and
// alpha defaults to 255.
func ParseHex(s string) (RGBA8, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return RGBA8{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(digits))
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return RGBA8{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}

	c := RGBA8{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// Hex formats the low 8 bits of each channel as "#RRGGBBAA".
func (c Color8[T]) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", uint8(c.R), uint8(c.G), uint8(c.B), uint8(c.A))
}
