//go:build darwin || linux || ios || android

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// openLibrary loads a dynamic library on Unix-like systems.
// Symbols are resolved lazily; module init runs through an explicit export.
func openLibrary(path string) (uintptr, error) {
	const RTLD_LAZY = 0x1
	handle, err := purego.Dlopen(path, RTLD_LAZY)
	if err != nil {
		return 0, fmt.Errorf("dlopen %s: %w", path, err)
	}
	return handle, nil
}

// getSymbol retrieves a symbol from the loaded library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

// bindFunc points fptr, a pointer to a Go func variable, at the C function at addr.
func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
