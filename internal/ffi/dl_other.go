//go:build !darwin && !linux && !windows

package ffi

import (
	"fmt"
	"runtime"
)

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic libraries are not supported on %s", runtime.GOOS)
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic libraries are not supported on %s", runtime.GOOS)
}

func closeLibrary(handle uintptr) error {
	return nil
}

// bindFunc is unreachable here since openLibrary always fails.
func bindFunc(fptr any, addr uintptr) {
	panic("ffi: bindFunc on unsupported platform")
}
