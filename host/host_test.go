package host

import (
	"io"
	"log"
	"reflect"
	"testing"
	"time"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

type recordingApp struct {
	calls []string
}

func (a *recordingApp) Create()         { a.calls = append(a.calls, "create") }
func (a *recordingApp) Render()         { a.calls = append(a.calls, "render") }
func (a *recordingApp) Resize(w, h int) { a.calls = append(a.calls, "resize") }
func (a *recordingApp) Pause()          { a.calls = append(a.calls, "pause") }
func (a *recordingApp) Resume()         { a.calls = append(a.calls, "resume") }
func (a *recordingApp) Dispose()        { a.calls = append(a.calls, "dispose") }

func quietHost() *Host {
	return New(log.New(io.Discard, "", 0))
}

func stage(from, to lifecycle.Stage) lifecycle.Event {
	return lifecycle.Event{From: from, To: to}
}

func TestHostLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   []string
	}{
		{
			name: "start and render",
			events: []any{
				stage(lifecycle.StageDead, lifecycle.StageFocused),
				size.Event{WidthPx: 1080, HeightPx: 1920},
				paint.Event{},
			},
			want: []string{"create", "resize", "render"},
		},
		{
			name: "size before create is applied after create",
			events: []any{
				size.Event{WidthPx: 1080, HeightPx: 1920},
				stage(lifecycle.StageDead, lifecycle.StageVisible),
			},
			want: []string{"create", "resize"},
		},
		{
			name: "background and foreground",
			events: []any{
				stage(lifecycle.StageDead, lifecycle.StageFocused),
				stage(lifecycle.StageFocused, lifecycle.StageAlive),
				paint.Event{},
				stage(lifecycle.StageAlive, lifecycle.StageFocused),
				paint.Event{},
			},
			want: []string{"create", "pause", "resume", "render"},
		},
		{
			name: "external paint is ignored",
			events: []any{
				stage(lifecycle.StageDead, lifecycle.StageFocused),
				paint.Event{External: true},
			},
			want: []string{"create"},
		},
		{
			name: "teardown pauses then disposes once",
			events: []any{
				stage(lifecycle.StageDead, lifecycle.StageFocused),
				stage(lifecycle.StageFocused, lifecycle.StageDead),
				stage(lifecycle.StageDead, lifecycle.StageFocused),
				paint.Event{},
			},
			want: []string{"create", "pause", "dispose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := quietHost()
			app := &recordingApp{}
			h.Initialize(app)
			for _, e := range tt.events {
				h.Handle(e)
			}
			if !reflect.DeepEqual(app.calls, tt.want) {
				t.Errorf("calls = %v, want %v", app.calls, tt.want)
			}
		})
	}
}

func TestHostWithoutApplicationStaysBlank(t *testing.T) {
	h := quietHost()
	if h.Installed() {
		t.Fatal("expected no application installed")
	}

	steps := []Step{
		h.Handle(stage(lifecycle.StageDead, lifecycle.StageFocused)),
		h.Handle(size.Event{WidthPx: 100, HeightPx: 100}),
		h.Handle(paint.Event{}),
	}
	for i, s := range steps {
		if s != (Step{}) {
			t.Errorf("step %d = %+v, want zero step", i, s)
		}
	}
}

func TestHostInitializeOnlyOnce(t *testing.T) {
	h := quietHost()
	first := &recordingApp{}
	second := &recordingApp{}
	h.Initialize(first)
	h.Initialize(second)

	h.Handle(stage(lifecycle.StageDead, lifecycle.StageFocused))

	if len(first.calls) != 1 || first.calls[0] != "create" {
		t.Errorf("first app calls = %v, want [create]", first.calls)
	}
	if len(second.calls) != 0 {
		t.Errorf("second app calls = %v, want none", second.calls)
	}
}

func TestHostPaintSteps(t *testing.T) {
	h := quietHost()
	h.Initialize(&recordingApp{})

	if s := h.Handle(stage(lifecycle.StageDead, lifecycle.StageVisible)); !s.Repaint {
		t.Error("expected repaint when becoming visible")
	}
	if s := h.Handle(paint.Event{}); !s.Publish || !s.Repaint {
		t.Errorf("paint step = %+v, want publish and repaint", s)
	}
	if s := h.Handle(stage(lifecycle.StageVisible, lifecycle.StageAlive)); s.Repaint {
		t.Error("expected no repaint after becoming invisible")
	}
	if s := h.Handle(paint.Event{}); s.Publish {
		t.Error("expected no publish while invisible")
	}
}

// reentrantApp queries the host from inside its lifecycle calls.
type reentrantApp struct {
	recordingApp
	host      *Host
	installed []bool
}

func (a *reentrantApp) Create() {
	a.recordingApp.Create()
	a.installed = append(a.installed, a.host.Installed())
}

func (a *reentrantApp) Render() {
	a.recordingApp.Render()
	a.installed = append(a.installed, a.host.Installed())
}

func TestHostAllowsReentrantApplication(t *testing.T) {
	h := quietHost()
	app := &reentrantApp{host: h}
	h.Initialize(app)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Handle(stage(lifecycle.StageDead, lifecycle.StageFocused))
		h.Handle(paint.Event{})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Handle deadlocked when the application called back into the host")
	}

	if want := []bool{true, true}; !reflect.DeepEqual(app.installed, want) {
		t.Errorf("installed = %v, want %v", app.installed, want)
	}
}
