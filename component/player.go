package component

import "github.com/lixenwraith/vi-pong/core"

// PlayerComponent marks the side an entity belongs to (paddles, goals)
type PlayerComponent struct {
	Side core.Player
}
