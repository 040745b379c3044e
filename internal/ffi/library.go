// Package ffi loads game modules from shared libraries via purego.
// A module library exports C functions named after the module's package name:
//
//	<pkg>_init() int32       optional, run once when the module is loaded
//	<pkg>_new() uintptr      entry symbol, returns an application handle
//	<pkg>_create(h)          lifecycle, see Object
//	<pkg>_render(h)
//	<pkg>_resize(h, w, h int32)
//	<pkg>_pause(h)
//	<pkg>_resume(h)
//	<pkg>_dispose(h)
package ffi

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	// ErrLibraryNotFound means no library could be opened for a module.
	ErrLibraryNotFound = errors.New("ffi: library not found")
	// ErrSymbolNotFound means the library lacks a required export.
	ErrSymbolNotFound = errors.New("ffi: symbol not found")
)

// InitError reports a module init export that returned nonzero.
type InitError struct {
	Symbol string
	Code   int32
}

func (e *InitError) Error() string {
	return fmt.Sprintf("ffi: %s returned %d", e.Symbol, e.Code)
}

// LibraryName returns the shared library file name for a package on goos.
func LibraryName(goos, pkg string) string {
	switch goos {
	case "darwin", "ios":
		return "lib" + pkg + ".dylib"
	case "windows":
		return pkg + ".dll"
	default:
		return "lib" + pkg + ".so"
	}
}

// SearchOptions controls where FindLibrary looks.
type SearchOptions struct {
	// Override is used as-is when set.
	Override string
	// Dirs are searched before the built-in locations.
	Dirs []string
}

// candidatePaths lists the locations checked for a package's library, in order.
func candidatePaths(goos, pkg string, opts SearchOptions) []string {
	libName := LibraryName(goos, pkg)

	var paths []string
	for _, dir := range opts.Dirs {
		paths = append(paths, filepath.Join(dir, libName))
	}
	paths = append(paths,
		libName,
		filepath.Join("lib", libName),
	)

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		paths = append(paths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		// app bundle locations
		if goos == "ios" || goos == "darwin" {
			paths = append(paths,
				filepath.Join(execDir, "Frameworks", libName),
				filepath.Join(execDir, "..", "Frameworks", libName),
			)
		}
	}
	return paths
}

// FindLibrary returns the path of the shared library for pkg. When no
// candidate exists on disk it returns the bare file name so the system
// loader can apply its own search rules (e.g. the APK's native lib dir).
func FindLibrary(pkg string, opts SearchOptions) string {
	if opts.Override != "" {
		return opts.Override
	}

	for _, path := range candidatePaths(runtime.GOOS, pkg, opts) {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return LibraryName(runtime.GOOS, pkg)
}

// Library is an opened shared library. Libraries are opened once per path
// and shared by every caller of Open.
type Library struct {
	Path string

	handle uintptr
	lookup func(name string) (uintptr, error)

	mu    sync.Mutex
	inits map[string]*initResult
}

type initResult struct {
	once sync.Once
	err  error
}

var (
	librariesMu sync.Mutex
	libraries   = map[string]*Library{}
)

func newLibrary(path string, lookup func(string) (uintptr, error)) *Library {
	return &Library{
		Path:   path,
		lookup: lookup,
		inits:  map[string]*initResult{},
	}
}

// Open loads the library at path, or returns the already loaded one.
// Failures wrap ErrLibraryNotFound and are not cached.
func Open(path string) (*Library, error) {
	librariesMu.Lock()
	defer librariesMu.Unlock()

	if lib, ok := libraries[path]; ok {
		return lib, nil
	}

	log.Printf("[ffi] runtime.GOOS = %s, runtime.GOARCH = %s", runtime.GOOS, runtime.GOARCH)
	log.Printf("[ffi] attempting to load library from: %s", path)
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, err)
	}

	lib := newLibrary(path, func(name string) (uintptr, error) {
		return getSymbol(handle, name)
	})
	lib.handle = handle
	libraries[path] = lib
	return lib, nil
}

// Close unloads the library. Objects created from it must not be used afterwards.
func (l *Library) Close() error {
	librariesMu.Lock()
	if libraries[l.Path] == l {
		delete(libraries, l.Path)
	}
	librariesMu.Unlock()

	if l.handle == 0 {
		return nil
	}
	h := l.handle
	l.handle = 0
	return closeLibrary(h)
}

// symbol resolves name, returning 0 when it is absent.
func (l *Library) symbol(name string) uintptr {
	addr, err := l.lookup(name)
	if err != nil || addr == 0 {
		return 0
	}
	return addr
}

// Init runs the optional <prefix>_init export once. Later calls return the
// first result without calling into the library again.
func (l *Library) Init(prefix string) error {
	l.mu.Lock()
	r, ok := l.inits[prefix]
	if !ok {
		r = &initResult{}
		l.inits[prefix] = r
	}
	l.mu.Unlock()

	r.once.Do(func() {
		name := prefix + "_init"
		addr := l.symbol(name)
		if addr == 0 {
			return
		}
		var fnInit func() int32
		bindFunc(&fnInit, addr)
		if code := fnInit(); code != 0 {
			r.err = &InitError{Symbol: name, Code: code}
		}
	})
	return r.err
}

// NewObject calls the <prefix>_new export and binds the lifecycle exports
// that are present.
func (l *Library) NewObject(prefix string) (*Object, error) {
	name := prefix + "_new"
	addr := l.symbol(name)
	if addr == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.Path)
	}
	var fnNew func() uintptr
	bindFunc(&fnNew, addr)

	handle := fnNew()
	if handle == 0 {
		return nil, fmt.Errorf("ffi: %s returned a null handle", name)
	}
	return bindObject(handle, prefix, l.symbol), nil
}
