package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFPS is the frame rate of the terminal loop
	DefaultFPS = 60

	// MaxFrameDelta caps elapsed time fed to a single frame after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// Terminals deliver key presses and auto-repeats but no key releases
	// KeyRepeatDelay holds a first press past the terminal's repeat delay (typically 250-600ms)
	// KeyHoldWindow is how long a key stays held after each auto-repeat
	KeyRepeatDelay = 500 * time.Millisecond
	KeyHoldWindow  = 150 * time.Millisecond
)

// Surface defaults for the terminal frontend
const (
	// CellWidth and CellHeight convert terminal cells to surface units
	CellWidth  = 8.0
	CellHeight = 16.0

	// DefaultSurfaceWidth and DefaultSurfaceHeight size the surface when no terminal is attached
	DefaultSurfaceWidth  = 1280.0
	DefaultSurfaceHeight = 720.0
)

// Event queue capacity hint per frame
const EventQueueCapacity = 16
