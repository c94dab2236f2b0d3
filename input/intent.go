package input

import "github.com/lixenwraith/vi-pong/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentVolumeUp   // + or =
	IntentVolumeDown // -
	IntentToggleHelp // h
	IntentResize     // Terminal resize event

	// Gameplay
	IntentPaddle // Movement key press or auto-repeat
)

// Intent is a translated terminal event
type Intent struct {
	Type IntentType
	Key  core.Key // IntentPaddle only

	// IntentResize only, in terminal cells
	Cols int
	Rows int
}
