package render

import (
	"fmt"
	"math"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

var baseStyle = tcell.StyleDefault.Background(RgbBackground)

// fillBox paints every cell the box touches
func fillBox(ctx RenderContext, canvas Canvas, b vmath.Box, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := ctx.CellRect(b)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			canvas.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawText writes s starting at (x, y), clipped to the canvas
func drawText(canvas Canvas, x, y int, s string, style tcell.Style) {
	w, h := canvas.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= 0 && x < w {
			canvas.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// BackgroundRenderer fills the terminal with the background color
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer { return &BackgroundRenderer{} }

func (r *BackgroundRenderer) Render(ctx RenderContext, _ *engine.World, canvas Canvas) {
	for y := 0; y < ctx.Rows; y++ {
		for x := 0; x < ctx.Cols; x++ {
			canvas.SetContent(x, y, ' ', nil, baseStyle)
		}
	}
}

// GoalRenderer shades goal zones
type GoalRenderer struct{}

func NewGoalRenderer() *GoalRenderer { return &GoalRenderer{} }

func (r *GoalRenderer) Render(ctx RenderContext, world *engine.World, canvas Canvas) {
	c := &world.Components
	style := tcell.StyleDefault.Background(RgbGoal)
	for _, e := range world.Query().With(c.Goal).With(c.Transform).Execute() {
		tr, _ := c.Transform.Get(e)
		fillBox(ctx, canvas, tr.Box(), ' ', style)
	}
}

// WallRenderer draws top and bottom walls
type WallRenderer struct{}

func NewWallRenderer() *WallRenderer { return &WallRenderer{} }

func (r *WallRenderer) Render(ctx RenderContext, world *engine.World, canvas Canvas) {
	c := &world.Components
	style := baseStyle.Foreground(RgbWall)
	for _, e := range world.Query().With(c.Wall).With(c.Transform).Execute() {
		tr, _ := c.Transform.Get(e)
		fillBox(ctx, canvas, tr.Box(), '█', style)
	}
}

// PaddleRenderer draws paddles colored by side
type PaddleRenderer struct{}

func NewPaddleRenderer() *PaddleRenderer { return &PaddleRenderer{} }

func (r *PaddleRenderer) Render(ctx RenderContext, world *engine.World, canvas Canvas) {
	c := &world.Components
	for _, e := range world.Query().With(c.Paddle).With(c.Player).With(c.Transform).Execute() {
		player, _ := c.Player.Get(e)
		tr, _ := c.Transform.Get(e)

		color := RgbPaddleLeft
		if player.Side == core.PlayerRight {
			color = RgbPaddleRight
		}
		fillBox(ctx, canvas, tr.Box(), '█', baseStyle.Foreground(color))
	}
}

// BallRenderer draws the ball
type BallRenderer struct{}

func NewBallRenderer() *BallRenderer { return &BallRenderer{} }

func (r *BallRenderer) Render(ctx RenderContext, world *engine.World, canvas Canvas) {
	c := &world.Components
	style := baseStyle.Foreground(RgbBall)
	for _, e := range world.Query().With(c.Ball).With(c.Transform).Execute() {
		tr, _ := c.Transform.Get(e)
		fillBox(ctx, canvas, tr.Box(), '●', style)
	}
}

// ScoreboardRenderer centers the score text on the scoreboard transform
type ScoreboardRenderer struct{}

func NewScoreboardRenderer() *ScoreboardRenderer { return &ScoreboardRenderer{} }

func (r *ScoreboardRenderer) Render(ctx RenderContext, world *engine.World, canvas Canvas) {
	c := &world.Components
	style := baseStyle.Foreground(RgbScoreboard).Bold(true)
	for _, e := range world.Query().With(c.Scoreboard).With(c.Transform).Execute() {
		board, _ := c.Scoreboard.Get(e)
		tr, _ := c.Transform.Get(e)

		col, row := ctx.ToCell(tr.Position)
		drawText(canvas, col-utf8.RuneCountInString(board.Text)/2, row, board.Text, style)
	}
}

// StatusBarRenderer shows key help on the last row, hidden with h
type StatusBarRenderer struct {
	hidden atomic.Bool
}

func NewStatusBarRenderer() *StatusBarRenderer { return &StatusBarRenderer{} }

// IsVisible implements VisibilityToggle
func (r *StatusBarRenderer) IsVisible() bool { return !r.hidden.Load() }

// Toggle flips visibility and returns the new state
func (r *StatusBarRenderer) Toggle() bool {
	for {
		h := r.hidden.Load()
		if r.hidden.CompareAndSwap(h, !h) {
			return h
		}
	}
}

func (r *StatusBarRenderer) Render(ctx RenderContext, _ *engine.World, canvas Canvas) {
	drawText(canvas, 0, ctx.Rows-1, StatusText(ctx), baseStyle.Foreground(RgbStatusBar))
}

// StatusText is the help line for ctx's sound state
func StatusText(ctx RenderContext) string {
	sound := "off"
	if !ctx.Muted {
		sound = fmt.Sprintf("%d%%", int(math.Round(ctx.Volume*100)))
	}
	return fmt.Sprintf(" W/S left  ↑/↓ right  m sound:%s  -/+ volume  h help  q quit ", sound)
}
