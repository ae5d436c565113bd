// Package vector provides 2D and 3D vector value types with the arithmetic
// and geometric helpers commonly needed by game and simulation code.
//
// Vectors are plain values. None of the operations report errors: dividing by
// an exact zero leaves the operand unchanged, normalizing a zero-length vector
// yields a fixed axis, out-of-range indices fall back to the first component
// and nil buffers behave like the zero vector.
package vector

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

func sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func acos[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}

// degrees converts an angle in radians to degrees.
func degrees[T Scalar](rad T) T {
	if f, ok := any(rad).(float32); ok {
		return T(f * (180 / math32.Pi))
	}
	return T(float64(rad) * (180 / math.Pi))
}

// finite reports whether x is neither NaN nor an infinity.
// Integer values are always finite.
func finite[T Scalar](x T) bool {
	if f, ok := any(x).(float32); ok {
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// lerp computes a + (b-a)*t in float64 so that unsigned element
// types do not wrap when b < a.
func lerp[T Scalar](a, b T, t float64) T {
	fa := float64(a)
	return T(fa + (float64(b)-fa)*t)
}

// mulAdd computes a + b*s in float64.
func mulAdd[T Scalar](a, b T, s float64) T {
	return T(float64(a) + float64(b)*s)
}

// nonZero reports whether every value in p is non-zero.
func nonZero[T Scalar](p ...T) bool {
	for _, f := range p {
		if f == 0 {
			return false
		}
	}
	return true
}
