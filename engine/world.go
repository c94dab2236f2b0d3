package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with its resources and component stores
// score is exposed read-only through Resources.Score
func NewWorld(score core.ScoreView) *World {
	return &World{
		nextEntityID: 1,
		Resources: &Resource{
			Time:   &TimeResource{},
			Input:  &InputResource{},
			Event:  &EventQueueResource{Queue: event.NewEventQueue()},
			Score:  score,
			Status: status.NewRegistry(),
		},
		Components: newComponentStore(),
		systems:    make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AddSystem adds a system to the world and keeps systems sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetSurface publishes surface dimensions; entities pick them up on the next reset
func (w *World) SetSurface(s core.Surface) {
	w.Resources.Surface = &SurfaceResource{Surface: s}
}

// SetInput attaches the held-key source read by movement systems
func (w *World) SetInput(keys KeyState) {
	w.Resources.Input.Keys = keys
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
// This is the hot-path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
