package parameter

// Entity geometry, in surface units
const (
	// PaddleWidth is the fixed horizontal paddle size
	PaddleWidth = 20.0

	// PaddleMargin is the distance from the side edge to the paddle center
	PaddleMargin = 50.0

	// PaddleHeightRatio scales paddle height from surface height
	PaddleHeightRatio = 0.2

	// PaddleSpeedDivisor: paddle speed = surface height / divisor (units per second)
	PaddleSpeedDivisor = 3.0

	// WallThickness is the vertical size of top and bottom walls
	WallThickness = 20.0

	// GoalThickness is the horizontal size of the goal zones
	GoalThickness = 20.0

	// BallSizeRatio scales the square ball side from surface height
	BallSizeRatio = 0.05

	// BallSpeedDivisor: ball speed = surface height / divisor (units per second)
	BallSpeedDivisor = 1.5

	// ScoreboardHeightRatio scales scoreboard box height from surface height
	ScoreboardHeightRatio = 0.05
)

// Initial score text before any reset
const ScoreboardInitialText = "0 : 0"
