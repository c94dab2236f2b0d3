package engine

// System is a per-frame unit of game logic
type System interface {
	// Init resets internal state
	Init()

	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders execution, lower values run first
	Priority() int

	// Update runs once per frame
	Update()
}
