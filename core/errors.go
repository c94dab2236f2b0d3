package core

import "github.com/pkg/errors"

// Invariant violations. Both are unrecoverable and raised as panics carrying a stack
var (
	// ErrMissingSurface means a layout reset ran before surface dimensions were published
	ErrMissingSurface = errors.New("layout reset without primary surface dimensions")

	// ErrDegenerateDirection means the ball direction collapsed to the zero vector
	ErrDegenerateDirection = errors.New("ball direction is the zero vector")
)

// Invariant panics with err annotated by the caller's stack
func Invariant(err error) {
	panic(errors.WithStack(err))
}
