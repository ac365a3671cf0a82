package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for world-space camera math
type Vec3F struct {
	X, Y, Z float64
}

// Unit directions on the camera movement plane (Y is up)
var (
	V3FLeft    = Vec3F{X: -1}
	V3FRight   = Vec3F{X: 1}
	V3FBack    = Vec3F{Z: -1}
	V3FForward = Vec3F{Z: 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns unit vector, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FEqual compares per component within tolerance
func V3FEqual(a, b Vec3F, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// V3FIsZero reports exact zero vector
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Vec2F is a float64 2D vector, used for normalized screen coordinates
type Vec2F struct {
	X, Y float64
}
