// pkg/vector/vector3d.go
package vector

import "unsafe"

// Vector3D represents a 3D vector with x, y and z components.
type Vector3D[T Scalar] struct {
	X T
	Y T
	Z T
}

// Vec3 is the float32 3D vector used by most callers.
type Vec3 = Vector3D[float32]

// New3D creates a vector from its components.
func New3D[T Scalar](x, y, z T) Vector3D[T] {
	return Vector3D[T]{X: x, Y: y, Z: z}
}

// FromSlice3D creates a vector from the first three elements of p.
// A nil or short p yields the zero vector.
func FromSlice3D[T Scalar](p []T) Vector3D[T] {
	if len(p) < 3 {
		return Vector3D[T]{}
	}
	return Vector3D[T]{X: p[0], Y: p[1], Z: p[2]}
}

// Set assigns all components.
func (v *Vector3D[T]) Set(x, y, z T) *Vector3D[T] {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// SetSlice assigns the components from p, or clears v if p is nil or short.
func (v *Vector3D[T]) SetSlice(p []T) *Vector3D[T] {
	*v = FromSlice3D(p)
	return v
}

// Fill assigns f to every component.
func (v *Vector3D[T]) Fill(f T) *Vector3D[T] {
	v.X, v.Y, v.Z = f, f, f
	return v
}

// Add returns the elementwise sum of two vectors.
func (v Vector3D[T]) Add(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// AddSlice adds p elementwise. A nil or short p leaves v unchanged.
func (v Vector3D[T]) AddSlice(p []T) Vector3D[T] {
	if len(p) < 3 {
		return v
	}
	return Vector3D[T]{X: v.X + p[0], Y: v.Y + p[1], Z: v.Z + p[2]}
}

// AddScalar adds f to every component.
func (v Vector3D[T]) AddScalar(f T) Vector3D[T] {
	return Vector3D[T]{X: v.X + f, Y: v.Y + f, Z: v.Z + f}
}

// Sub returns the elementwise difference between two vectors.
func (v Vector3D[T]) Sub(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// SubSlice subtracts p elementwise. A nil or short p leaves v unchanged.
func (v Vector3D[T]) SubSlice(p []T) Vector3D[T] {
	if len(p) < 3 {
		return v
	}
	return Vector3D[T]{X: v.X - p[0], Y: v.Y - p[1], Z: v.Z - p[2]}
}

// SubScalar subtracts f from every component.
func (v Vector3D[T]) SubScalar(f T) Vector3D[T] {
	return Vector3D[T]{X: v.X - f, Y: v.Y - f, Z: v.Z - f}
}

// Mul returns the elementwise product of two vectors.
func (v Vector3D[T]) Mul(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// MulSlice multiplies by p elementwise. A nil or short p leaves v unchanged.
func (v Vector3D[T]) MulSlice(p []T) Vector3D[T] {
	if len(p) < 3 {
		return v
	}
	return Vector3D[T]{X: v.X * p[0], Y: v.Y * p[1], Z: v.Z * p[2]}
}

// MulScalar multiplies every component by f.
func (v Vector3D[T]) MulScalar(f T) Vector3D[T] {
	return Vector3D[T]{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Scale is MulScalar.
func (v Vector3D[T]) Scale(factor T) Vector3D[T] {
	return v.MulScalar(factor)
}

// Div returns the elementwise quotient. If any component of other is
// exactly zero no division happens and v is returned unchanged.
func (v Vector3D[T]) Div(other Vector3D[T]) Vector3D[T] {
	if !nonZero(other.X, other.Y, other.Z) {
		return v
	}
	return Vector3D[T]{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// DivSlice divides by p elementwise with the same zero rule as Div.
// A nil or short p leaves v unchanged.
func (v Vector3D[T]) DivSlice(p []T) Vector3D[T] {
	if len(p) < 3 || !nonZero(p[0], p[1], p[2]) {
		return v
	}
	return Vector3D[T]{X: v.X / p[0], Y: v.Y / p[1], Z: v.Z / p[2]}
}

// DivScalar divides every component by f. Dividing by zero returns v.
func (v Vector3D[T]) DivScalar(f T) Vector3D[T] {
	if f == 0 {
		return v
	}
	return Vector3D[T]{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

// AddAssign adds other to v in place.
func (v *Vector3D[T]) AddAssign(other Vector3D[T]) *Vector3D[T] {
	*v = v.Add(other)
	return v
}

// AddSliceAssign adds p to v in place.
func (v *Vector3D[T]) AddSliceAssign(p []T) *Vector3D[T] {
	*v = v.AddSlice(p)
	return v
}

// AddScalarAssign adds f to every component in place.
func (v *Vector3D[T]) AddScalarAssign(f T) *Vector3D[T] {
	*v = v.AddScalar(f)
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vector3D[T]) SubAssign(other Vector3D[T]) *Vector3D[T] {
	*v = v.Sub(other)
	return v
}

// SubSliceAssign subtracts p from v in place.
func (v *Vector3D[T]) SubSliceAssign(p []T) *Vector3D[T] {
	*v = v.SubSlice(p)
	return v
}

// SubScalarAssign subtracts f from every component in place.
func (v *Vector3D[T]) SubScalarAssign(f T) *Vector3D[T] {
	*v = v.SubScalar(f)
	return v
}

// MulAssign multiplies v by other in place.
func (v *Vector3D[T]) MulAssign(other Vector3D[T]) *Vector3D[T] {
	*v = v.Mul(other)
	return v
}

// MulSliceAssign multiplies v by p in place.
func (v *Vector3D[T]) MulSliceAssign(p []T) *Vector3D[T] {
	*v = v.MulSlice(p)
	return v
}

// MulScalarAssign multiplies every component by f in place.
func (v *Vector3D[T]) MulScalarAssign(f T) *Vector3D[T] {
	*v = v.MulScalar(f)
	return v
}

// DivAssign divides v by other in place, following the zero rule of Div.
func (v *Vector3D[T]) DivAssign(other Vector3D[T]) *Vector3D[T] {
	*v = v.Div(other)
	return v
}

// DivSliceAssign divides v by p in place, following the zero rule of Div.
func (v *Vector3D[T]) DivSliceAssign(p []T) *Vector3D[T] {
	*v = v.DivSlice(p)
	return v
}

// DivScalarAssign divides every component by f in place unless f is zero.
func (v *Vector3D[T]) DivScalarAssign(f T) *Vector3D[T] {
	*v = v.DivScalar(f)
	return v
}

// Neg returns the additive inverse of v.
func (v Vector3D[T]) Neg() Vector3D[T] {
	return Vector3D[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Negate inverts v in place.
func (v *Vector3D[T]) Negate() *Vector3D[T] {
	*v = v.Neg()
	return v
}

// Clear resets v to the zero vector.
func (v *Vector3D[T]) Clear() *Vector3D[T] {
	*v = Vector3D[T]{}
	return v
}

// At returns component i. Indices outside [0, 3) return X.
func (v Vector3D[T]) At(i int) T {
	switch i {
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return v.X
}

// Index returns a pointer to component i. Indices outside [0, 3)
// return a pointer to X.
func (v *Vector3D[T]) Index(i int) *T {
	switch i {
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	return &v.X
}

// Slice returns the components as a slice sharing v's memory.
func (v *Vector3D[T]) Slice() []T {
	return unsafe.Slice(&v.X, 3)
}

// Array returns a copy of the components as an array.
func (v Vector3D[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// CopyTo copies the components into dst and returns the number copied.
func (v Vector3D[T]) CopyTo(dst []T) int {
	a := v.Array()
	return copy(dst, a[:])
}

// Equal reports whether all components are exactly equal.
func (v Vector3D[T]) Equal(other Vector3D[T]) bool {
	return v == other
}

// Less reports whether every component of v is less than other's.
func (v Vector3D[T]) Less(other Vector3D[T]) bool {
	return v.X < other.X && v.Y < other.Y && v.Z < other.Z
}

// Greater reports whether every component of v is greater than other's.
func (v Vector3D[T]) Greater(other Vector3D[T]) bool {
	return v.X > other.X && v.Y > other.Y && v.Z > other.Z
}

// IsZero reports whether all components are zero.
func (v Vector3D[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsZero2D reports whether X and Y are zero, ignoring Z.
func (v Vector3D[T]) IsZero2D() bool {
	return v.X == 0 && v.Y == 0
}

// IsValid reports whether every component is finite.
func (v Vector3D[T]) IsValid() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vector3D[T]) Dot(other Vector3D[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Dot2D returns the dot product of the X and Y components.
func (v Vector3D[T]) Dot2D(other Vector3D[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSqr returns the squared magnitude of the vector.
func (v Vector3D[T]) LengthSqr() T {
	return v.Dot(v)
}

// LengthSqr2D returns the squared magnitude of the X and Y components.
func (v Vector3D[T]) LengthSqr2D() T {
	return v.Dot2D(v)
}

// Length returns the magnitude of the vector.
func (v Vector3D[T]) Length() T {
	return sqrt(v.LengthSqr())
}

// Length2D returns the magnitude of the X and Y components.
func (v Vector3D[T]) Length2D() T {
	return sqrt(v.LengthSqr2D())
}

// Distance returns the distance between two points.
func (v Vector3D[T]) Distance(other Vector3D[T]) T {
	return other.Sub(v).Length()
}

// Distance2D returns the distance between two points projected onto XY.
func (v Vector3D[T]) Distance2D(other Vector3D[T]) T {
	return other.Sub(v).Length2D()
}

// Cross sets v to a × b and returns v.
func (v *Vector3D[T]) Cross(a, b Vector3D[T]) *Vector3D[T] {
	*v = Cross3D(a, b)
	return v
}

// Cross3D returns a × b using the right-handed convention.
// The products are rounded before subtracting so that a × a is exactly zero
// even where the compiler would otherwise fuse them.
func Cross3D[T Scalar](a, b Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		X: T(a.Y*b.Z) - T(a.Z*b.Y),
		Y: T(a.Z*b.X) - T(a.X*b.Z),
		Z: T(a.X*b.Y) - T(a.Y*b.X),
	}
}

// Normalized returns a unit vector in the same direction.
// A zero-length vector yields (0, 0, 1).
func (v Vector3D[T]) Normalized() Vector3D[T] {
	length := v.Length()
	if length == 0 {
		return Vector3D[T]{Z: 1}
	}
	inv := 1 / length
	return Vector3D[T]{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

// Normalize scales v to unit length in place and returns its previous
// length. A zero-length v becomes (0, 0, 1) and 0 is returned.
func (v *Vector3D[T]) Normalize() T {
	length := v.Length()
	if length == 0 {
		*v = Vector3D[T]{Z: 1}
		return length
	}
	inv := 1 / length
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return length
}

// Lerp sets v to a + (b-a)*t. t is not clamped.
func (v *Vector3D[T]) Lerp(a, b Vector3D[T], t float64) *Vector3D[T] {
	v.X = lerp(a.X, b.X, t)
	v.Y = lerp(a.Y, b.Y, t)
	v.Z = lerp(a.Z, b.Z, t)
	return v
}

// MulAdd sets v to a + b*scalar.
func (v *Vector3D[T]) MulAdd(a, b Vector3D[T], scalar float64) *Vector3D[T] {
	v.X = mulAdd(a.X, b.X, scalar)
	v.Y = mulAdd(a.Y, b.Y, scalar)
	v.Z = mulAdd(a.Z, b.Z, scalar)
	return v
}

// AngleBetween returns the angle between v and other in degrees.
// Both v and other are normalized in place.
func (v *Vector3D[T]) AngleBetween(other *Vector3D[T]) T {
	other.Normalize()
	v.Normalize()
	return degrees(acos(v.Dot(*other)))
}

// AsVector2D drops the Z component.
func (v Vector3D[T]) AsVector2D() Vector2D[T] {
	return Vector2D[T]{X: v.X, Y: v.Y}
}

// Basis returns unit right and up vectors perpendicular to v, treating v
// as a forward direction with +Z up. A vertical v yields right = (0, -1, 0)
// and up = (-v.Z, 0, 0).
func (v Vector3D[T]) Basis() (right, up Vector3D[T]) {
	if v.IsZero2D() {
		var one T = 1
		right = Vector3D[T]{Y: -one}
		up = Vector3D[T]{X: -v.Z}
		return right, up
	}
	right = Cross3D(v, Vector3D[T]{Z: 1})
	right.Normalize()
	up = Cross3D(right, v)
	up.Normalize()
	return right, up
}
