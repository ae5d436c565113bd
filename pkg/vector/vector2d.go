// pkg/vector/vector2d.go
package vector

import "unsafe"

// Vector2D represents a 2D vector with x and y components.
type Vector2D[T Scalar] struct {
	X T
	Y T
}

// Vec2 is the float32 2D vector used by most callers.
type Vec2 = Vector2D[float32]

// New2D creates a vector from its components.
func New2D[T Scalar](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// FromSlice2D creates a vector from the first two elements of p.
// A nil or short p yields the zero vector.
func FromSlice2D[T Scalar](p []T) Vector2D[T] {
	if len(p) < 2 {
		return Vector2D[T]{}
	}
	return Vector2D[T]{X: p[0], Y: p[1]}
}

// Set assigns both components.
func (v *Vector2D[T]) Set(x, y T) *Vector2D[T] {
	v.X, v.Y = x, y
	return v
}

// SetSlice assigns the components from p, or clears v if p is nil or short.
func (v *Vector2D[T]) SetSlice(p []T) *Vector2D[T] {
	*v = FromSlice2D(p)
	return v
}

// Fill assigns f to both components.
func (v *Vector2D[T]) Fill(f T) *Vector2D[T] {
	v.X, v.Y = f, f
	return v
}

// Add returns the sum of two vectors
func (v Vector2D[T]) Add(other Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// AddSlice adds p elementwise. A nil or short p leaves v unchanged.
func (v Vector2D[T]) AddSlice(p []T) Vector2D[T] {
	if len(p) < 2 {
		return v
	}
	return Vector2D[T]{X: v.X + p[0], Y: v.Y + p[1]}
}

// AddScalar adds f to both components.
func (v Vector2D[T]) AddScalar(f T) Vector2D[T] {
	return Vector2D[T]{X: v.X + f, Y: v.Y + f}
}

// Sub returns the difference between two vectors
func (v Vector2D[T]) Sub(other Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// SubSlice subtracts p elementwise. A nil or short p leaves v unchanged.
func (v Vector2D[T]) SubSlice(p []T) Vector2D[T] {
	if len(p) < 2 {
		return v
	}
	return Vector2D[T]{X: v.X - p[0], Y: v.Y - p[1]}
}

// SubScalar subtracts f from both components.
func (v Vector2D[T]) SubScalar(f T) Vector2D[T] {
	return Vector2D[T]{X: v.X - f, Y: v.Y - f}
}

// Mul returns the elementwise product of two vectors.
func (v Vector2D[T]) Mul(other Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{
		X: v.X * other.X,
		Y: v.Y * other.Y,
	}
}

// MulSlice multiplies by p elementwise. A nil or short p leaves v unchanged.
func (v Vector2D[T]) MulSlice(p []T) Vector2D[T] {
	if len(p) < 2 {
		return v
	}
	return Vector2D[T]{X: v.X * p[0], Y: v.Y * p[1]}
}

// MulScalar multiplies the vector by a scalar value
func (v Vector2D[T]) MulScalar(f T) Vector2D[T] {
	return Vector2D[T]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Scale is MulScalar.
func (v Vector2D[T]) Scale(factor T) Vector2D[T] {
	return v.MulScalar(factor)
}

// Div returns the elementwise quotient. If either component of other is
// exactly zero no division happens and v is returned unchanged.
func (v Vector2D[T]) Div(other Vector2D[T]) Vector2D[T] {
	if !nonZero(other.X, other.Y) {
		return v
	}
	return Vector2D[T]{X: v.X / other.X, Y: v.Y / other.Y}
}

// DivSlice divides by p elementwise with the same zero rule as Div.
func (v Vector2D[T]) DivSlice(p []T) Vector2D[T] {
	if len(p) < 2 || !nonZero(p[0], p[1]) {
		return v
	}
	return Vector2D[T]{X: v.X / p[0], Y: v.Y / p[1]}
}

// DivScalar divides both components by f. Dividing by zero returns v.
func (v Vector2D[T]) DivScalar(f T) Vector2D[T] {
	if f == 0 {
		return v
	}
	return Vector2D[T]{X: v.X / f, Y: v.Y / f}
}

// AddAssign adds other to v in place.
func (v *Vector2D[T]) AddAssign(other Vector2D[T]) *Vector2D[T] {
	*v = v.Add(other)
	return v
}

// AddSliceAssign adds p to v in place.
func (v *Vector2D[T]) AddSliceAssign(p []T) *Vector2D[T] {
	*v = v.AddSlice(p)
	return v
}

// AddScalarAssign adds f to both components in place.
func (v *Vector2D[T]) AddScalarAssign(f T) *Vector2D[T] {
	*v = v.AddScalar(f)
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vector2D[T]) SubAssign(other Vector2D[T]) *Vector2D[T] {
	*v = v.Sub(other)
	return v
}

// SubSliceAssign subtracts p from v in place.
func (v *Vector2D[T]) SubSliceAssign(p []T) *Vector2D[T] {
	*v = v.SubSlice(p)
	return v
}

// SubScalarAssign subtracts f from both components in place.
func (v *Vector2D[T]) SubScalarAssign(f T) *Vector2D[T] {
	*v = v.SubScalar(f)
	return v
}

// MulAssign multiplies v by other in place.
func (v *Vector2D[T]) MulAssign(other Vector2D[T]) *Vector2D[T] {
	*v = v.Mul(other)
	return v
}

// MulSliceAssign multiplies v by p in place.
func (v *Vector2D[T]) MulSliceAssign(p []T) *Vector2D[T] {
	*v = v.MulSlice(p)
	return v
}

// MulScalarAssign multiplies both components by f in place.
func (v *Vector2D[T]) MulScalarAssign(f T) *Vector2D[T] {
	*v = v.MulScalar(f)
	return v
}

// DivAssign divides v by other in place, following the zero rule of Div.
func (v *Vector2D[T]) DivAssign(other Vector2D[T]) *Vector2D[T] {
	*v = v.Div(other)
	return v
}

// DivSliceAssign divides v by p in place, following the zero rule of Div.
func (v *Vector2D[T]) DivSliceAssign(p []T) *Vector2D[T] {
	*v = v.DivSlice(p)
	return v
}

// DivScalarAssign divides both components by f in place unless f is zero.
func (v *Vector2D[T]) DivScalarAssign(f T) *Vector2D[T] {
	*v = v.DivScalar(f)
	return v
}

// Neg returns the additive inverse of v.
func (v Vector2D[T]) Neg() Vector2D[T] {
	return Vector2D[T]{X: -v.X, Y: -v.Y}
}

// Negate inverts v in place.
func (v *Vector2D[T]) Negate() *Vector2D[T] {
	*v = v.Neg()
	return v
}

// Clear resets v to the zero vector.
func (v *Vector2D[T]) Clear() *Vector2D[T] {
	*v = Vector2D[T]{}
	return v
}

// At returns component i. Indices outside [0, 2) return X.
func (v Vector2D[T]) At(i int) T {
	if i == 1 {
		return v.Y
	}
	return v.X
}

// Index returns a pointer to component i. Indices outside [0, 2)
// return a pointer to X.
func (v *Vector2D[T]) Index(i int) *T {
	if i == 1 {
		return &v.Y
	}
	return &v.X
}

// Slice returns the components as a slice sharing v's memory.
func (v *Vector2D[T]) Slice() []T {
	return unsafe.Slice(&v.X, 2)
}

// Array returns a copy of the components as an array.
func (v Vector2D[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// CopyTo copies the components into dst and returns the number copied.
func (v Vector2D[T]) CopyTo(dst []T) int {
	a := v.Array()
	return copy(dst, a[:])
}

// Equal reports whether both components are exactly equal.
func (v Vector2D[T]) Equal(other Vector2D[T]) bool {
	return v == other
}

// Less reports whether both components of v are less than other's.
func (v Vector2D[T]) Less(other Vector2D[T]) bool {
	return v.X < other.X && v.Y < other.Y
}

// Greater reports whether both components of v are greater than other's.
func (v Vector2D[T]) Greater(other Vector2D[T]) bool {
	return v.X > other.X && v.Y > other.Y
}

// IsZero reports whether both components are zero.
func (v Vector2D[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsValid reports whether both components are finite.
func (v Vector2D[T]) IsValid() bool {
	return finite(v.X) && finite(v.Y)
}

// Dot returns the dot product of two vectors
func (v Vector2D[T]) Dot(other Vector2D[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSqr returns magnitude squared (optimization for comparisons)
func (v Vector2D[T]) LengthSqr() T {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vector2D[T]) Length() T {
	return sqrt(v.LengthSqr())
}

// Distance returns the distance between two vectors
func (v Vector2D[T]) Distance(other Vector2D[T]) T {
	return other.Sub(v).Length()
}

// Normalized returns a unit vector in the same direction.
// A zero-length vector yields (0, 1).
func (v Vector2D[T]) Normalized() Vector2D[T] {
	length := v.Length()
	if length == 0 {
		return Vector2D[T]{Y: 1}
	}
	inv := 1 / length
	return Vector2D[T]{
		X: v.X * inv,
		Y: v.Y * inv,
	}
}

// Normalize scales v to unit length in place and returns its previous
// length. A zero-length v becomes (0, 1) and 0 is returned.
func (v *Vector2D[T]) Normalize() T {
	length := v.Length()
	if length == 0 {
		*v = Vector2D[T]{Y: 1}
		return length
	}
	inv := 1 / length
	v.X *= inv
	v.Y *= inv
	return length
}

// Lerp sets v to a + (b-a)*t. t is not clamped.
func (v *Vector2D[T]) Lerp(a, b Vector2D[T], t float64) *Vector2D[T] {
	v.X = lerp(a.X, b.X, t)
	v.Y = lerp(a.Y, b.Y, t)
	return v
}

// MulAdd sets v to a + b*scalar.
func (v *Vector2D[T]) MulAdd(a, b Vector2D[T], scalar float64) *Vector2D[T] {
	v.X = mulAdd(a.X, b.X, scalar)
	v.Y = mulAdd(a.Y, b.Y, scalar)
	return v
}

// AngleBetween returns the angle between v and other in degrees.
// Both v and other are normalized in place.
func (v *Vector2D[T]) AngleBetween(other *Vector2D[T]) T {
	other.Normalize()
	v.Normalize()
	return degrees(acos(v.Dot(*other)))
}
