package ffi

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "libdungeon_crawler.so"},
		{"android", "libdungeon_crawler.so"},
		{"darwin", "libdungeon_crawler.dylib"},
		{"ios", "libdungeon_crawler.dylib"},
		{"windows", "dungeon_crawler.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := LibraryName(tt.goos, "dungeon_crawler"); got != tt.want {
				t.Errorf("LibraryName(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestFindLibraryOverride(t *testing.T) {
	got := FindLibrary("breakout", SearchOptions{Override: "/opt/games/libbreakout.so"})
	if got != "/opt/games/libbreakout.so" {
		t.Errorf("FindLibrary = %q, want override path", got)
	}
}

func TestFindLibrarySearchDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	libName := LibraryName(runtime.GOOS, "breakout")
	want := filepath.Join(second, libName)
	if err := os.WriteFile(want, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	got := FindLibrary("breakout", SearchOptions{Dirs: []string{first, second}})
	if got != want {
		t.Errorf("FindLibrary = %q, want %q", got, want)
	}
}

func TestFindLibraryFallsBackToName(t *testing.T) {
	got := FindLibrary("no_such_module_anywhere", SearchOptions{Dirs: []string{t.TempDir()}})
	if want := LibraryName(runtime.GOOS, "no_such_module_anywhere"); got != want {
		t.Errorf("FindLibrary = %q, want %q", got, want)
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), LibraryName(runtime.GOOS, "nonexistent_project"))
	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error opening a missing library")
	}
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("Open error = %v, want ErrLibraryNotFound", err)
	}
}

func noSymbols(string) (uintptr, error) {
	return 0, errors.New("not found")
}

func TestInitWithoutExportSucceeds(t *testing.T) {
	lib := newLibrary("libbreakout.so", noSymbols)
	if err := lib.Init("breakout"); err != nil {
		t.Errorf("Init = %v, want nil when breakout_init is absent", err)
	}
	if err := lib.Init("breakout"); err != nil {
		t.Errorf("second Init = %v, want nil", err)
	}
}

func TestNewObjectMissingEntrySymbol(t *testing.T) {
	lib := newLibrary("libbreakout.so", noSymbols)
	_, err := lib.NewObject("breakout")
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("NewObject error = %v, want ErrSymbolNotFound", err)
	}
}

func TestBindObjectReportsMissingCapabilities(t *testing.T) {
	o := bindObject(1, "breakout", func(string) uintptr { return 0 })

	want := []string{"create", "render", "resize", "pause", "resume", "dispose"}
	got := o.MissingCapabilities()
	if len(got) != len(want) {
		t.Fatalf("MissingCapabilities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MissingCapabilities[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// unbound lifecycle calls are no-ops
	o.Create()
	o.Render()
	o.Resize(320, 240)
	o.Pause()
	o.Resume()
	o.Dispose()
	if o.handle != 0 {
		t.Error("expected handle to be cleared after Dispose")
	}
}
