package component

// ColliderComponent tags entities the ball reflects off (paddles, walls)
// Goals never carry it
type ColliderComponent struct{}
