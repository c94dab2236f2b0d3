package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
)

// resetPending reports whether a layout reset was queued this frame
// Only presence matters: every trigger resolves to the same surface read,
// so several triggers in one frame collapse to a single application
func resetPending(w *engine.World) bool {
	_, ok := w.Resources.Event.Queue.Latest(event.EventLayoutReset)
	return ok
}
