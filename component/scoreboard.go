package component

// ScoreboardComponent holds the rendered score text shown by the display
type ScoreboardComponent struct {
	Text string
}
