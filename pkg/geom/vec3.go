// Package geom provides float32 vector and matrix math for mesh geometry.
package geom

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when normalizing a vector with no magnitude.
var ErrZeroLength = errors.New("zero-length vector")

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns the unit vector pointing the same way as v.
// A vector with exactly zero magnitude fails with ErrZeroLength;
// there is no epsilon window.
func (v Vec3) Normalize() (Vec3, error) {
	return v.NormalizeTol(0)
}

// NormalizeTol is Normalize with a configurable threshold: any magnitude
// at or below tol is rejected as zero-length. tol 0 reproduces the exact
// check of Normalize.
func (v Vec3) NormalizeTol(tol float32) (Vec3, error) {
	l := v.Length()
	if l <= tol {
		return Vec3{}, ErrZeroLength
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// unit normalizes for rendering math, where a degenerate input is not an
// error worth surfacing; it falls back to the zero vector.
func unit(v Vec3) Vec3 {
	u, err := v.Normalize()
	if err != nil {
		return Vec3{}
	}
	return u
}
