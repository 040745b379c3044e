package launcher

import (
	"errors"
	"strings"

	"github.com/agiangrant/launcher/internal/ffi"
)

// NativeLoader loads game modules from shared libraries. The library for a
// module is found by convention from the module's package name, and the entry
// symbol becomes the prefix of the library's exports.
type NativeLoader struct {
	opts ffi.SearchOptions
}

// NewNativeLoader returns a loader searching as configured.
func NewNativeLoader(config NativeConfig) *NativeLoader {
	return &NativeLoader{
		opts: ffi.SearchOptions{
			Override: config.Library,
			Dirs:     config.SearchPaths,
		},
	}
}

// LibraryPath returns the library path that would be opened for ref.
func (l *NativeLoader) LibraryPath(ref ModuleReference) string {
	return ffi.FindLibrary(ref.PackageName(), l.opts)
}

func (l *NativeLoader) Load(ref ModuleReference) (any, error) {
	lib, err := ffi.Open(l.LibraryPath(ref))
	if err != nil {
		return nil, newError(KindResolution, ref, err)
	}

	if err := lib.Init(ref.PackageName()); err != nil {
		return nil, newError(KindInitialization, ref, err)
	}

	obj, err := lib.NewObject(strings.ReplaceAll(ref.EntrySymbol, "-", "_"))
	switch {
	case errors.Is(err, ffi.ErrSymbolNotFound):
		return nil, newError(KindSymbol, ref, err)
	case err != nil:
		return nil, newError(KindInitialization, ref, err)
	}
	return obj, nil
}

// DefaultLoader resolves statically registered modules first and falls back
// to shared libraries. Each module is loaded at most once per process.
func DefaultLoader(config Config) Loader {
	return Memoize(Chain(
		NewRegistryLoader(nil),
		NewNativeLoader(config.Native),
	))
}

// FromConfig builds the bootstrap for the configured project.
func FromConfig(config Config, opts ...BootstrapOption) (*Bootstrap, error) {
	id, err := config.Identifier()
	if err != nil {
		return nil, err
	}
	opts = append([]BootstrapOption{WithFailurePolicy(config.Bootstrap.FailurePolicy)}, opts...)
	return NewBootstrap(id, DefaultLoader(config), opts...), nil
}
