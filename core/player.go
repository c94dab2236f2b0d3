package core

// Player identifies a side of the play field
type Player uint8

const (
	PlayerLeft Player = iota
	PlayerRight
)

func (p Player) String() string {
	if p == PlayerRight {
		return "right"
	}
	return "left"
}

// Key is a logical key identifier, decoupled from any input backend
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyS:
		return "s"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// MovementKeys returns the (up, down) binding for the side
func (p Player) MovementKeys() (up, down Key) {
	if p == PlayerRight {
		return KeyUp, KeyDown
	}
	return KeyW, KeyS
}
