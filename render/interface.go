package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
)

// Canvas is the drawable subset of tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is a Canvas that is cleared and presented once per frame
type Screen interface {
	Canvas
	Clear()
	Show()
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, world *engine.World, canvas Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
