package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyFrames       = "engine.frames"
	KeyEntities     = "engine.entities"
	KeyResets       = "layout.resets"
	KeyBounces      = "ball.bounces"
	KeyBallSpeed    = "ball.speed"
	KeyGoalsLeft    = "score.left"
	KeyGoalsRight   = "score.right"
	KeyScoreText    = "score.text"
	KeyAudioEnabled = "audio.enabled"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}
