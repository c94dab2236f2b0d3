package parameter

// System Execution Priorities (lower runs first)
// Order is the per-frame data flow: input, movement, collision, scoring, reset, display
const (
	PriorityPaddleMovement = 10
	PriorityBallMovement   = 20
	PriorityBallCollision  = 30
	PriorityGoal           = 40
	PriorityLayoutReset    = 50 // Ball, paddle, wall and goal consumers share this slot; order among them is irrelevant
	PriorityScoreboard     = 60
	PriorityDiagnostics    = 1000
)
