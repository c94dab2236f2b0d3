package core

// Surface is the play area size in surface units; both dimensions are positive
type Surface struct {
	Width  float64
	Height float64
}

// Valid reports whether both dimensions are positive
func (s Surface) Valid() bool {
	return s.Width > 0 && s.Height > 0
}
