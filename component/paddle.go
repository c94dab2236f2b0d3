package component

// PaddleComponent holds vertical speed in surface units per second, set by layout reset
type PaddleComponent struct {
	Speed float64
}
