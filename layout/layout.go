// Package layout computes entity geometry from surface dimensions.
// Every function is pure: identical inputs always yield identical geometry,
// so a reset can be applied any number of times with the same result.
package layout

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Ball returns speed and transform for the ball: square, centered at the origin
func Ball(s core.Surface) (float64, component.TransformComponent) {
	side := parameter.BallSizeRatio * s.Height
	return s.Height / parameter.BallSpeedDivisor, component.TransformComponent{
		Position: vmath.Vec2F{},
		Size:     vmath.V2F(side, side),
	}
}

// Paddle returns speed and transform for a side's paddle, vertically centered
func Paddle(side core.Player, s core.Surface) (float64, component.TransformComponent) {
	x := parameter.PaddleMargin - s.Width/2
	if side == core.PlayerRight {
		x = s.Width/2 - parameter.PaddleMargin
	}
	return s.Height / parameter.PaddleSpeedDivisor, component.TransformComponent{
		Position: vmath.V2F(x, 0),
		Size:     vmath.V2F(parameter.PaddleWidth, parameter.PaddleHeightRatio*s.Height),
	}
}

// Wall returns the transform for a boundary wall spanning the full width
func Wall(v component.WallVariant, s core.Surface) component.TransformComponent {
	y := (s.Height - parameter.WallThickness) / 2
	if v == component.WallBottom {
		y = -y
	}
	return component.TransformComponent{
		Position: vmath.V2F(0, y),
		Size:     vmath.V2F(s.Width, parameter.WallThickness),
	}
}

// Goal returns the transform for a side's goal spanning the full height
// The left goal sits at the positive edge and the right goal at the negative edge
func Goal(side core.Player, s core.Surface) component.TransformComponent {
	x := (s.Width - parameter.GoalThickness) / 2
	if side == core.PlayerRight {
		x = -x
	}
	return component.TransformComponent{
		Position: vmath.V2F(x, 0),
		Size:     vmath.V2F(parameter.GoalThickness, s.Height),
	}
}

// Scoreboard returns the text box just below the top wall
func Scoreboard(s core.Surface) component.TransformComponent {
	h := parameter.ScoreboardHeightRatio * s.Height
	return component.TransformComponent{
		Position: vmath.V2F(0, s.Height/2-parameter.WallThickness-h),
		Size:     vmath.V2F(s.Width/4, h),
	}
}
