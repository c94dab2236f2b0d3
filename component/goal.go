package component

// GoalComponent marks a pass-through scoring zone; the owning side is on PlayerComponent
type GoalComponent struct{}
