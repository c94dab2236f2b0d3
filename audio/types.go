package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Ball reflected off a paddle or wall
	SoundScore                   // Goal scored
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundBounce:
		return "bounce"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}
