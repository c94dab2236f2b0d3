package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Terminal dimensions in cells
	Cols int
	Rows int

	// Surface units per cell
	CellWidth  float64
	CellHeight float64

	Frame int64

	// Sound state shown in the status bar, Volume in [0, 1]
	Muted  bool
	Volume float64
}

// NewRenderContext sizes a context for a terminal of cols x rows cells
func NewRenderContext(cols, rows int, cellWidth, cellHeight float64) RenderContext {
	return RenderContext{
		Cols:       cols,
		Rows:       rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// Surface returns the simulation surface covered by the terminal
func (c RenderContext) Surface() core.Surface {
	return core.Surface{
		Width:  float64(c.Cols) * c.CellWidth,
		Height: float64(c.Rows) * c.CellHeight,
	}
}

// ToCell maps a surface point (origin at center, +y up) to a terminal cell (origin top-left, +y down)
func (c RenderContext) ToCell(p vmath.Vec2F) (col, row int) {
	s := c.Surface()
	col = int(math.Floor((p.X + s.Width/2) / c.CellWidth))
	row = int(math.Floor((s.Height/2 - p.Y) / c.CellHeight))
	return col, row
}

// CellRect maps a box to the half-open cell range [x0, x1) x [y0, y1) it covers, clipped to the terminal
// Any partially covered cell is included
func (c RenderContext) CellRect(b vmath.Box) (x0, y0, x1, y1 int) {
	s := c.Surface()
	min, max := b.Min(), b.Max()

	x0 = int(math.Floor((min.X + s.Width/2) / c.CellWidth))
	x1 = int(math.Ceil((max.X + s.Width/2) / c.CellWidth))
	y0 = int(math.Floor((s.Height/2 - max.Y) / c.CellHeight))
	y1 = int(math.Ceil((s.Height/2 - min.Y) / c.CellHeight))

	x0, x1 = clampSpan(x0, x1, c.Cols)
	y0, y1 = clampSpan(y0, y1, c.Rows)
	return x0, y0, x1, y1
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
