package core

import (
	"math"
)

// Epsilon is the tolerance used to keep hit points off the surface they were found on
// and to reject near-parallel rays.
const Epsilon = 1e-4

// Vec3 represents a 3D vector. It is also used for linear RGB colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to v
func Splat(v float64) Vec3 {
	return Vec3{v, v, v}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Reciprocal returns 1/v per component. Zero components become signed infinities.
func (v Vec3) Reciprocal() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Reflect mirrors v about the plane with the given unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * normal.Dot(v)))
}

// Min returns the component-wise minimum. A NaN component loses to the other operand.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{minNum(v.X, other.X), minNum(v.Y, other.Y), minNum(v.Z, other.Z)}
}

// Max returns the component-wise maximum. A NaN component loses to the other operand.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{maxNum(v.X, other.X), maxNum(v.Y, other.Y), maxNum(v.Z, other.Z)}
}

// MinComponent returns the smallest component, ignoring NaNs
func (v Vec3) MinComponent() float64 {
	return minNum(minNum(v.X, v.Y), v.Z)
}

// MaxComponent returns the largest component, ignoring NaNs
func (v Vec3) MaxComponent() float64 {
	return maxNum(maxNum(v.X, v.Y), v.Z)
}

// Signum returns +1 or -1 per component following the sign bit, so -0 maps to -1
func (v Vec3) Signum() Vec3 {
	return Vec3{math.Copysign(1, v.X), math.Copysign(1, v.Y), math.Copysign(1, v.Z)}
}

// Step returns 0 for components below edge and 1 otherwise
func (v Vec3) Step(edge float64) Vec3 {
	step := func(x float64) float64 {
		if x < edge {
			return 0
		}
		return 1
	}
	return Vec3{step(v.X), step(v.Y), step(v.Z)}
}

// Frac returns the fractional part of every component (sign follows the component)
func (v Vec3) Frac() Vec3 {
	_, x := math.Modf(v.X)
	_, y := math.Modf(v.Y)
	_, z := math.Modf(v.Z)
	return Vec3{x, y, z}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Equals reports whether every component is within tolerance of other
func (v Vec3) Equals(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// Mix linearly interpolates between a and b
func Mix(a, b Vec3, ratio float64) Vec3 {
	return a.Add(b.Subtract(a).Multiply(ratio))
}

// ColorFromHex converts a 0xRRGGBB value to a linear color in [0,1]
func ColorFromHex(value uint32) Vec3 {
	const inv = 1.0 / 255.0
	return Vec3{
		X: inv * float64(value>>16&0xff),
		Y: inv * float64(value>>8&0xff),
		Z: inv * float64(value&0xff),
	}
}

func minNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a < b:
		return a
	}
	return b
}

func maxNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	}
	return b
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
