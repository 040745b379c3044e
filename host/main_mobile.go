//go:build android || ios

package host

import (
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/paint"
)

// Main runs the gomobile event loop, feeding every event to h. It does not
// return while the process is alive.
func Main(h *Host) {
	app.Main(func(a app.App) {
		for e := range a.Events() {
			step := h.Handle(a.Filter(e))
			if step.Publish {
				a.Publish()
			}
			if step.Repaint {
				a.Send(paint.Event{})
			}
		}
	})
}
