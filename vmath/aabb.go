package vmath

import "math"

// Box is an axis-aligned rectangle given by its center and full size
type Box struct {
	Center Vec2F
	Size   Vec2F
}

// Min returns the lower-left corner
func (b Box) Min() Vec2F {
	return Vec2F{b.Center.X - b.Size.X/2, b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner
func (b Box) Max() Vec2F {
	return Vec2F{b.Center.X + b.Size.X/2, b.Center.Y + b.Size.Y/2}
}

// Collision names the edge of the second box that the first box struck
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// penetration returns overlap depth per axis; a non-positive depth means separated
func penetration(a, b Box) (dx, dy float64) {
	dx = (a.Size.X+b.Size.X)/2 - math.Abs(b.Center.X-a.Center.X)
	dy = (a.Size.Y+b.Size.Y)/2 - math.Abs(b.Center.Y-a.Center.Y)
	return dx, dy
}

// Overlaps reports strict overlap; boxes sharing only an edge do not overlap
func Overlaps(a, b Box) bool {
	dx, dy := penetration(a, b)
	return dx > 0 && dy > 0
}

// Collide resolves an overlap between a and b on the axis of minimum penetration
// Left/Right: a sits left/right of b's center. Bottom/Top: a sits below/above b's center
// Equal depths resolve horizontally
func Collide(a, b Box) Collision {
	dx, dy := penetration(a, b)
	if dx <= 0 || dy <= 0 {
		return CollisionNone
	}

	if dx <= dy {
		if a.Center.X < b.Center.X {
			return CollisionLeft
		}
		return CollisionRight
	}

	if a.Center.Y < b.Center.Y {
		return CollisionBottom
	}
	return CollisionTop
}
