package engine

import (
	"github.com/lixenwraith/vi-pong/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once with the world; pointers remain valid for application lifetime
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]

	// Actors
	Ball   *Store[component.BallComponent]
	Paddle *Store[component.PaddleComponent]
	Player *Store[component.PlayerComponent]

	// Field
	Wall     *Store[component.WallComponent]
	Goal     *Store[component.GoalComponent]
	Collider *Store[component.ColliderComponent]

	// UI
	Scoreboard *Store[component.ScoreboardComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),

		Ball:   NewStore[component.BallComponent](),
		Paddle: NewStore[component.PaddleComponent](),
		Player: NewStore[component.PlayerComponent](),

		Wall:     NewStore[component.WallComponent](),
		Goal:     NewStore[component.GoalComponent](),
		Collider: NewStore[component.ColliderComponent](),

		Scoreboard: NewStore[component.ScoreboardComponent](),
	}
}
