package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in surface units
// Origin is the surface center, +Y points up
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FNormalize returns the unit vector, zero-safe
// Callers that require a direction must check IsZero first
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	return Vec2F{v.X / mag, v.Y / mag}
}

// IsZero reports whether both components are exactly zero
func (v Vec2F) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ReflectAxisX flips the horizontal component (vertical surface hit)
func ReflectAxisX(v Vec2F) Vec2F {
	return Vec2F{-v.X, v.Y}
}

// ReflectAxisY flips the vertical component (horizontal surface hit)
func ReflectAxisY(v Vec2F) Vec2F {
	return Vec2F{v.X, -v.Y}
}
