package launcher

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Application is the lifecycle the platform host drives after handoff.
type Application interface {
	// Create is called once after handoff.
	Create()
	// Render is called once per frame.
	Render()
	// Resize is called when the surface size changes.
	Resize(width, height int)
	// Pause is called when the host goes to the background.
	Pause()
	// Resume is called when the host returns to the foreground.
	Resume()
	// Dispose is called once at teardown and must release all resources.
	Dispose()
}

// CapabilityReporter is implemented by values whose lifecycle methods are
// bound at runtime, such as objects backed by a native library. A non-empty
// result means the value cannot serve as an Application.
type CapabilityReporter interface {
	MissingCapabilities() []string
}

var capabilities = []struct {
	name string
	has  func(any) bool
}{
	{"create", func(v any) bool { _, ok := v.(interface{ Create() }); return ok }},
	{"render", func(v any) bool { _, ok := v.(interface{ Render() }); return ok }},
	{"resize", func(v any) bool { _, ok := v.(interface{ Resize(int, int) }); return ok }},
	{"pause", func(v any) bool { _, ok := v.(interface{ Pause() }); return ok }},
	{"resume", func(v any) bool { _, ok := v.(interface{ Resume() }); return ok }},
	{"dispose", func(v any) bool { _, ok := v.(interface{ Dispose() }); return ok }},
}

// Adapt checks that value satisfies the application lifecycle and returns it
// as an Application. On mismatch the returned *Error has KindTypeMismatch and
// names the missing capabilities.
func Adapt(value any) (Application, error) {
	return adapt(ModuleReference{}, value)
}

func adapt(ref ModuleReference, value any) (Application, error) {
	if value == nil {
		return nil, newError(KindTypeMismatch, ref, errors.New("entry value is nil"))
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		if v.IsNil() {
			return nil, newError(KindTypeMismatch, ref, fmt.Errorf("entry value is a nil %T", value))
		}
	}

	var missing []string
	for _, c := range capabilities {
		if !c.has(value) {
			missing = append(missing, c.name)
		}
	}
	if r, ok := value.(CapabilityReporter); ok && len(missing) == 0 {
		missing = r.MissingCapabilities()
	}
	if len(missing) > 0 {
		return nil, newError(KindTypeMismatch, ref,
			fmt.Errorf("%T is missing %s", value, strings.Join(missing, ", ")))
	}

	return value.(Application), nil
}
