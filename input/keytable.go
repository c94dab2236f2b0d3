package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Key    core.Key
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-sensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable binds W/S to the left paddle and the arrow keys to the right
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {Intent: IntentPaddle, Key: core.KeyUp},
			tcell.KeyDown:   {Intent: IntentPaddle, Key: core.KeyDown},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentPaddle, Key: core.KeyW},
			'W': {Intent: IntentPaddle, Key: core.KeyW},
			's': {Intent: IntentPaddle, Key: core.KeyS},
			'S': {Intent: IntentPaddle, Key: core.KeyS},
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'+': {Intent: IntentVolumeUp},
			'=': {Intent: IntentVolumeUp},
			'-': {Intent: IntentVolumeDown},
			'h': {Intent: IntentToggleHelp},
		},
	}
}

// Translate maps a terminal event to an intent; unbound events yield IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Intent{Type: IntentResize, Cols: cols, Rows: rows}

	case *tcell.EventKey:
		var (
			entry KeyEntry
			ok    bool
		)
		if ev.Key() == tcell.KeyRune {
			entry, ok = kt.Runes[ev.Rune()]
		} else {
			entry, ok = kt.SpecialKeys[ev.Key()]
		}
		if !ok {
			return Intent{}
		}
		return Intent{Type: entry.Intent, Key: entry.Key}
	}
	return Intent{}
}
