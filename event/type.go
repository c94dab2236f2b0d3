package event

// EventType represents the type of game event
type EventType int

const (
	// EventLayoutReset asks every sized entity to recompute geometry from the current surface
	// Trigger: Game.Resize (surface changed), GoalSystem (goal scored)
	// Consumer: Ball/Paddle/Wall/Goal reset systems, ScoreboardSystem, AudioEngine, Collector | Payload: *LayoutResetPayload
	EventLayoutReset EventType = iota

	// EventBallBounce reports an applied reflection off a collider
	// Trigger: BallCollisionSystem | Consumer: AudioEngine, Collector | Payload: *BallBouncePayload
	EventBallBounce

	eventTypeCount
)

// AllTypes lists every event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t EventType) String() string {
	switch t {
	case EventLayoutReset:
		return "layout_reset"
	case EventBallBounce:
		return "ball_bounce"
	default:
		return "unknown"
	}
}

// GameEvent is a single queued message
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
