package component

import "github.com/lixenwraith/vi-pong/vmath"

// TransformComponent places a visible entity on the surface
// Position is the box center; Size is the full width and height
type TransformComponent struct {
	Position vmath.Vec2F
	Size     vmath.Vec2F
}

// Box returns the axis-aligned bounds used for collision tests
func (t TransformComponent) Box() vmath.Box {
	return vmath.Box{Center: t.Position, Size: t.Size}
}
