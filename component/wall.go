package component

// WallVariant selects which boundary a wall guards
type WallVariant uint8

const (
	WallTop WallVariant = iota
	WallBottom
)

func (v WallVariant) String() string {
	if v == WallBottom {
		return "bottom"
	}
	return "top"
}

// WallComponent marks an immobile boundary collider
type WallComponent struct {
	Variant WallVariant
}
