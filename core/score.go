package core

import "fmt"

// ScoreView is the read-only face of Score handed to display and telemetry code
type ScoreView interface {
	Left() int
	Right() int
	Text() string
}

// Score holds both counters for the process lifetime
// Exactly one owner holds the pointer and is the only writer; counters never decrease
type Score struct {
	left  int
	right int
}

// NewScore returns a zeroed score
func NewScore() *Score {
	return &Score{}
}

// Award increments the counter of the given side by one
func (s *Score) Award(side Player) {
	if side == PlayerRight {
		s.right++
		return
	}
	s.left++
}

func (s *Score) Left() int  { return s.left }
func (s *Score) Right() int { return s.right }

// Text renders the scoreboard string
func (s *Score) Text() string {
	return fmt.Sprintf("%d : %d", s.left, s.right)
}
