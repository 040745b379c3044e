package launcher

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Factory constructs the value held by a module symbol.
type Factory func() (any, error)

// Module is a statically linked game module.
type Module struct {
	// Init is the module's top-level setup. It runs once, the first time the
	// module is loaded. May be nil.
	Init func() error

	// Symbols maps symbol names to the factories producing their values.
	// By convention the entry symbol has the same name as the module.
	Symbols map[string]Factory
}

// Registry maps module names to modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*moduleEntry
}

type moduleEntry struct {
	module Module

	initOnce sync.Once
	initErr  error

	mu      sync.Mutex
	symbols map[string]*symbolSlot
}

type symbolSlot struct {
	once  sync.Once
	value any
	err   error
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: map[string]*moduleEntry{}}
}

// Register adds a module under name.
func (r *Registry) Register(name string, m Module) error {
	if name == "" {
		return errors.New("launcher: empty module name")
	}
	if m.Init == nil && len(m.Symbols) == 0 {
		return fmt.Errorf("launcher: module %q has no init and no symbols", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("launcher: duplicate registration for module %q", name)
	}
	r.modules[name] = &moduleEntry{module: m, symbols: map[string]*symbolSlot{}}
	return nil
}

// Modules returns the registered module names, sorted.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (*moduleEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.modules[name]
	return e, ok
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Register.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a module to the default registry. It is meant to be called
// from a game module's init function and panics on an invalid or duplicate
// registration.
func Register(name string, m Module) {
	if err := defaultRegistry.Register(name, m); err != nil {
		panic(err)
	}
}

// RegisterApplication registers a module whose entry symbol, named after the
// module, is produced by newApp.
func RegisterApplication(name string, newApp func() Application) {
	Register(name, Module{
		Symbols: map[string]Factory{
			name: func() (any, error) { return newApp(), nil },
		},
	})
}

// initialize runs the module's Init exactly once and returns its result.
func (e *moduleEntry) initialize() error {
	e.initOnce.Do(func() {
		if e.module.Init != nil {
			e.initErr = safeCall(e.module.Init)
		}
	})
	return e.initErr
}

func (e *moduleEntry) slot(symbol string) (*symbolSlot, Factory, bool) {
	factory, ok := e.module.Symbols[symbol]
	if !ok {
		return nil, nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.symbols[symbol]
	if !ok {
		s = &symbolSlot{}
		e.symbols[symbol] = s
	}
	return s, factory, true
}

// safeCall runs fn, turning a panic into an error.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
