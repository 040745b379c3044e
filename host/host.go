// Package host is the native application host that owns a launched
// application after handoff. It turns gomobile lifecycle, size and paint
// events into the Application lifecycle calls.
package host

import (
	"log"
	"sync"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/agiangrant/launcher"
)

// Step tells the event loop what to do after an event was handled.
type Step struct {
	// Publish the frame that was just rendered.
	Publish bool
	// Repaint schedules another paint event.
	Repaint bool
}

// Host drives one Application. Until Initialize is called every event is
// ignored and the screen stays blank.
type Host struct {
	logger *log.Logger

	mu       sync.Mutex
	app      launcher.Application
	created  bool
	disposed bool
	visible  bool
	paused   bool
	width    int
	height   int
}

// New returns a host with no application installed.
func New(logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{logger: logger}
}

// Initialize installs app. Only the first call has an effect.
func (h *Host) Initialize(app launcher.Application) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.app != nil {
		h.logger.Println("[host] application already installed, ignoring")
		return
	}
	h.app = app
}

// Installed reports whether an application has been installed.
func (h *Host) Installed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.app != nil
}

// Handle processes one event. The state transition is decided under the
// host's lock; the application is called after the lock is released, so it
// may call back into the host.
func (h *Host) Handle(e any) Step {
	h.mu.Lock()
	step, calls := h.handle(e)
	h.mu.Unlock()

	for _, call := range calls {
		call()
	}
	return step
}

func (h *Host) handle(e any) (Step, []func()) {
	if h.app == nil || h.disposed {
		return Step{}, nil
	}

	app := h.app
	switch e := e.(type) {
	case lifecycle.Event:
		return h.lifecycle(e)
	case size.Event:
		h.width, h.height = e.WidthPx, e.HeightPx
		var calls []func()
		if h.created {
			w, ht := h.width, h.height
			calls = append(calls, func() { app.Resize(w, ht) })
		}
		return Step{Repaint: h.visible}, calls
	case paint.Event:
		if e.External || !h.created || !h.visible {
			return Step{}, nil
		}
		return Step{Publish: true, Repaint: true}, []func(){app.Render}
	}
	return Step{}, nil
}

// lifecycle applies stage crossings: on-crossings from the lowest stage up,
// off-crossings from the highest down, since one event may cross several.
func (h *Host) lifecycle(e lifecycle.Event) (Step, []func()) {
	var (
		step  Step
		calls []func()
		app   = h.app
	)

	if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOn && !h.created {
		h.logger.Println("[host] create")
		calls = append(calls, app.Create)
		h.created = true
		if h.width > 0 && h.height > 0 {
			w, ht := h.width, h.height
			calls = append(calls, func() { app.Resize(w, ht) })
		}
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOn {
		h.visible = true
		step.Repaint = true
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOn && h.paused {
		h.logger.Println("[host] resume")
		calls = append(calls, app.Resume)
		h.paused = false
	}

	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff && h.created && !h.paused {
		h.logger.Println("[host] pause")
		calls = append(calls, app.Pause)
		h.paused = true
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOff {
		h.visible = false
		step.Repaint = false
	}
	if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff && h.created {
		if !h.paused {
			calls = append(calls, app.Pause)
			h.paused = true
		}
		h.logger.Println("[host] dispose")
		calls = append(calls, app.Dispose)
		h.disposed = true
	}

	return step, calls
}
