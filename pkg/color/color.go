// Package color provides RGBA color value types in floating-point [0,1]
// and integral [0,255] form, with the conversions between them and a
// packed 32-bit representation.
//
// The packed word stores R in bits 0-7, G in bits 8-15, B in bits 16-23
// and A in bits 24-31.
package color

import (
	stdcolor "image/color"

	"golang.org/x/exp/constraints"
)

// ColorF is an RGBA color with floating-point channels nominally in [0, 1].
// Channels are not clamped until the color is packed.
type ColorF[T constraints.Float] struct {
	R, G, B, A T
}

// Color8 is an RGBA color with integral channels nominally in [0, 255].
type Color8[T constraints.Integer] struct {
	R, G, B, A T
}

// RGBAF is the float32 color used by most callers.
type RGBAF = ColorF[float32]

// RGBA8 is the 8-bit-per-channel color used by most callers.
type RGBA8 = Color8[uint8]

// NewF creates a floating-point color from its channels.
func NewF[T constraints.Float](r, g, b, a T) ColorF[T] {
	return ColorF[T]{R: r, G: g, B: b, A: a}
}

// New8 creates an integral color from its channels.
func New8[T constraints.Integer](r, g, b, a T) Color8[T] {
	return Color8[T]{R: r, G: g, B: b, A: a}
}

// FromIntegral converts integral channels in [0, 255] to a floating-point
// color by dividing each by 255.
func FromIntegral[T constraints.Float, U constraints.Integer](r, g, b, a U) ColorF[T] {
	return ColorF[T]{
		R: T(float64(r) / 255.0),
		G: T(float64(g) / 255.0),
		B: T(float64(b) / 255.0),
		A: T(float64(a) / 255.0),
	}
}

// FromFloat converts floating-point channels in [0, 1] to an integral color
// by multiplying each by 255 and truncating. No saturation is applied;
// callers with out-of-range input should clamp first.
func FromFloat[T constraints.Integer, U constraints.Float](r, g, b, a U) Color8[T] {
	return Color8[T]{
		R: T(float64(r) * 255.0),
		G: T(float64(g) * 255.0),
		B: T(float64(b) * 255.0),
		A: T(float64(a) * 255.0),
	}
}

// Set assigns all channels.
func (c *ColorF[T]) Set(r, g, b, a T) *ColorF[T] {
	c.R, c.G, c.B, c.A = r, g, b, a
	return c
}

// Equal reports whether all channels are exactly equal.
func (c ColorF[T]) Equal(other ColorF[T]) bool {
	return c == other
}

// IsNonZero reports whether every channel, alpha included, is non-zero.
func (c ColorF[T]) IsNonZero() bool {
	return c.R != 0 && c.G != 0 && c.B != 0 && c.A != 0
}

// IsNonZeroRGB reports whether the red, green and blue channels are non-zero.
func (c ColorF[T]) IsNonZeroRGB() bool {
	return c.R != 0 && c.G != 0 && c.B != 0
}

// Packed quantizes each channel to 8 bits and packs them into a word.
// Channels are saturated to [0, 1] and rounded half up.
func (c ColorF[T]) Packed() uint32 {
	return uint32(quantize(c.R)) |
		uint32(quantize(c.G))<<8 |
		uint32(quantize(c.B))<<16 |
		uint32(quantize(c.A))<<24
}

// NRGBA returns the color as an image/color value using the same
// quantization as Packed.
func (c ColorF[T]) NRGBA() stdcolor.NRGBA {
	return Unpack(c.Packed()).NRGBA()
}

// quantize saturates f to [0, 1] and maps it to [0, 255].
func quantize[T constraints.Float](f T) uint8 {
	return uint8(int32(float64(saturate(f))*255.0 + 0.5))
}

func saturate[T constraints.Float](f T) T {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Set assigns all channels.
func (c *Color8[T]) Set(r, g, b, a T) *Color8[T] {
	c.R, c.G, c.B, c.A = r, g, b, a
	return c
}

// Equal reports whether all channels are exactly equal.
func (c Color8[T]) Equal(other Color8[T]) bool {
	return c == other
}

// IsNonZero reports whether every channel, alpha included, is non-zero.
func (c Color8[T]) IsNonZero() bool {
	return c.R != 0 && c.G != 0 && c.B != 0 && c.A != 0
}

// IsNonZeroRGB reports whether the red, green and blue channels are non-zero.
func (c Color8[T]) IsNonZeroRGB() bool {
	return c.R != 0 && c.G != 0 && c.B != 0
}

// Packed packs the raw channel values into a word without scaling.
// Channels wider than 8 bits spill into the neighbouring lanes, and bits
// beyond the 32nd are dropped.
func (c Color8[T]) Packed() uint32 {
	return uint32(c.R) |
		uint32(c.G)<<8 |
		uint32(c.B)<<16 |
		uint32(c.A)<<24
}

// NRGBA returns the low 8 bits of each channel as an image/color value.
func (c Color8[T]) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}

// Unpack splits a packed word back into its four channels.
func Unpack(word uint32) RGBA8 {
	return RGBA8{
		R: uint8(word),
		G: uint8(word >> 8),
		B: uint8(word >> 16),
		A: uint8(word >> 24),
	}
}
