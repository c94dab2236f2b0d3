package render

import (
	"github.com/lixenwraith/vi-pong/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
// The world is read under its update lock
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, world *engine.World) {
	o.screen.Clear()

	world.RunSafe(func() {
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, world, o.screen)
		}
	})

	o.screen.Show()
}

// RegisterDefaults installs the standard pong layers and returns the status bar for toggling
func (o *RenderOrchestrator) RegisterDefaults() *StatusBarRenderer {
	bar := NewStatusBarRenderer()
	o.Register(NewBackgroundRenderer(), PriorityBackground)
	o.Register(NewGoalRenderer(), PriorityField)
	o.Register(NewWallRenderer(), PriorityWall)
	o.Register(NewPaddleRenderer(), PriorityEntities)
	o.Register(NewBallRenderer(), PriorityEntities)
	o.Register(NewScoreboardRenderer(), PriorityUI)
	o.Register(bar, PriorityUI)
	return bar
}
