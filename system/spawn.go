package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Playfield holds the entity IDs created by SpawnPlayfield
type Playfield struct {
	Ball       core.Entity
	Paddles    [2]core.Entity // Indexed by core.Player
	Walls      [2]core.Entity // Indexed by component.WallVariant
	Goals      [2]core.Entity // Indexed by core.Player
	Scoreboard core.Entity
}

// SpawnPlayfield creates the fixed entity set of one match
// Geometry is zero until the first layout reset; Transform exists on every entity so resets can overwrite it
func SpawnPlayfield(w *engine.World) Playfield {
	c := &w.Components
	var pf Playfield

	pf.Ball = w.CreateEntity()
	c.Ball.Set(pf.Ball, component.NewBallComponent())
	c.Transform.Set(pf.Ball, component.TransformComponent{})

	for _, side := range []core.Player{core.PlayerLeft, core.PlayerRight} {
		paddle := w.CreateEntity()
		c.Paddle.Set(paddle, component.PaddleComponent{})
		c.Player.Set(paddle, component.PlayerComponent{Side: side})
		c.Collider.Set(paddle, component.ColliderComponent{})
		c.Transform.Set(paddle, component.TransformComponent{})
		pf.Paddles[side] = paddle

		// Goals are pass-through: no collider
		goal := w.CreateEntity()
		c.Goal.Set(goal, component.GoalComponent{})
		c.Player.Set(goal, component.PlayerComponent{Side: side})
		c.Transform.Set(goal, component.TransformComponent{})
		pf.Goals[side] = goal
	}

	for _, variant := range []component.WallVariant{component.WallTop, component.WallBottom} {
		wall := w.CreateEntity()
		c.Wall.Set(wall, component.WallComponent{Variant: variant})
		c.Collider.Set(wall, component.ColliderComponent{})
		c.Transform.Set(wall, component.TransformComponent{})
		pf.Walls[variant] = wall
	}

	pf.Scoreboard = w.CreateEntity()
	c.Scoreboard.Set(pf.Scoreboard, component.ScoreboardComponent{Text: parameter.ScoreboardInitialText})
	c.Transform.Set(pf.Scoreboard, component.TransformComponent{})

	return pf
}

// RegisterSystems adds every simulation system to the world in its priority slot
func RegisterSystems(w *engine.World, score *core.Score) {
	w.AddSystem(NewPaddleMovementSystem(w))
	w.AddSystem(NewBallMovementSystem(w))
	w.AddSystem(NewBallCollisionSystem(w))
	w.AddSystem(NewGoalSystem(w, score))
	w.AddSystem(NewBallResetSystem(w))
	w.AddSystem(NewPaddleResetSystem(w))
	w.AddSystem(NewWallResetSystem(w))
	w.AddSystem(NewGoalResetSystem(w))
	w.AddSystem(NewScoreboardSystem(w))
	w.AddSystem(NewDiagnosticsSystem(w))
}
