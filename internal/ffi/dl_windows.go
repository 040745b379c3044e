//go:build windows

package ffi

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// Loaded DLLs by module handle; FindProc needs the *windows.DLL.
var (
	dllsMu sync.Mutex
	dlls   = map[uintptr]*windows.DLL{}
)

func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("LoadDLL %s: %w", path, err)
	}
	handle := uintptr(dll.Handle)
	dllsMu.Lock()
	dlls[handle] = dll
	dllsMu.Unlock()
	return handle, nil
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	dllsMu.Lock()
	dll := dlls[handle]
	dllsMu.Unlock()
	if dll == nil {
		return 0, fmt.Errorf("library %#x not loaded", handle)
	}
	proc, err := dll.FindProc(name)
	if err != nil {
		return 0, fmt.Errorf("FindProc(%s): %w", name, err)
	}
	return proc.Addr(), nil
}

func closeLibrary(handle uintptr) error {
	dllsMu.Lock()
	dll := dlls[handle]
	delete(dlls, handle)
	dllsMu.Unlock()
	if dll == nil {
		return nil
	}
	return dll.Release()
}

func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
