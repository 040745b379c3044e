package launcher

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNativeLoaderMissingLibrary(t *testing.T) {
	l := NewNativeLoader(NativeConfig{SearchPaths: []string{t.TempDir()}})
	ref := Resolve("nonexistent-project")

	if got := l.LibraryPath(ref); !strings.Contains(got, "nonexistent_project") {
		t.Errorf("LibraryPath = %q, want the underscore package name", got)
	}

	_, err := l.Load(ref)
	if !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Load error = %v, want ErrModuleNotFound", err)
	}
}

func TestNativeLoaderOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "libcustom.so")
	l := NewNativeLoader(NativeConfig{Library: override})
	if got := l.LibraryPath(Resolve("breakout")); got != override {
		t.Errorf("LibraryPath = %q, want %q", got, override)
	}
}

func TestDefaultLoaderNonexistentProject(t *testing.T) {
	config := DefaultConfig()
	config.Native.SearchPaths = []string{t.TempDir()}
	config.Project.ID = "nonexistent-project"

	b, err := FromConfig(config, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("FromConfig error = %v", err)
	}
	o := b.Start()
	if KindOf(o.Err) != KindResolution {
		t.Errorf("KindOf = %v, want resolution", KindOf(o.Err))
	}
	if b.State() != StateFailed {
		t.Errorf("state = %v, want %v", b.State(), StateFailed)
	}
}

func init() {
	RegisterApplication("linked-game", func() Application { return &fakeGame{} })
}

func TestDefaultLoaderRegisteredModule(t *testing.T) {
	config := DefaultConfig()
	config.Native.SearchPaths = []string{t.TempDir()}
	loader := DefaultLoader(config)
	ref := Resolve("linked-game")

	first, err := loader.Load(ref)
	if err != nil {
		t.Fatalf("first Load error = %v", err)
	}
	if _, ok := first.(*fakeGame); !ok {
		t.Fatalf("Load = %T, want *fakeGame", first)
	}

	second, err := loader.Load(ref)
	if err != nil {
		t.Fatalf("second Load error = %v", err)
	}
	if second != first {
		t.Error("second Load returned a different value")
	}

	// a fresh chain still sees the registry's single instance
	third, err := DefaultLoader(config).Load(ref)
	if err != nil {
		t.Fatalf("Load from new loader error = %v", err)
	}
	if third != first {
		t.Error("new loader returned a different value")
	}
}
