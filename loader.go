package launcher

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader loads the module named by a reference and resolves its entry symbol
// to a live value. Failures are returned as *Error.
type Loader interface {
	Load(ref ModuleReference) (any, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ref ModuleReference) (any, error)

func (f LoaderFunc) Load(ref ModuleReference) (any, error) {
	return f(ref)
}

// RegistryLoader resolves modules from a Registry.
type RegistryLoader struct {
	registry *Registry
}

// NewRegistryLoader returns a loader backed by r, or by the default registry
// when r is nil.
func NewRegistryLoader(r *Registry) *RegistryLoader {
	if r == nil {
		r = defaultRegistry
	}
	return &RegistryLoader{registry: r}
}

// Load initializes the module once, then resolves the entry symbol. The
// symbol's factory also runs once; later loads return the same value.
func (l *RegistryLoader) Load(ref ModuleReference) (any, error) {
	entry, ok := l.registry.lookup(ref.ModuleName)
	if !ok {
		return nil, newError(KindResolution, ref, ErrModuleNotFound)
	}

	if err := entry.initialize(); err != nil {
		return nil, newError(KindInitialization, ref, err)
	}

	slot, factory, ok := entry.slot(ref.EntrySymbol)
	if !ok {
		return nil, newError(KindSymbol, ref, ErrSymbolNotFound)
	}
	slot.once.Do(func() {
		slot.err = safeCall(func() error {
			v, err := factory()
			slot.value = v
			return err
		})
	})
	if slot.err != nil {
		return nil, newError(KindInitialization, ref, slot.err)
	}
	return slot.value, nil
}

// Chain returns a loader that tries each loader in order. A resolution
// failure moves on to the next loader; any other outcome is final.
func Chain(loaders ...Loader) Loader {
	return LoaderFunc(func(ref ModuleReference) (any, error) {
		var last error = newError(KindResolution, ref, ErrModuleNotFound)
		for _, l := range loaders {
			v, err := l.Load(ref)
			if err == nil {
				return v, nil
			}
			if KindOf(err) != KindResolution {
				return nil, err
			}
			last = err
		}
		return nil, last
	})
}

// Memoize wraps next so each reference is loaded at most once. Concurrent
// loads of the same reference share a single call, and the outcome, success
// or failure, is returned to every later caller.
func Memoize(next Loader) Loader {
	return &memoLoader{next: next, done: map[ModuleReference]memoResult{}}
}

type memoLoader struct {
	next  Loader
	group singleflight.Group

	mu   sync.Mutex
	done map[ModuleReference]memoResult
}

type memoResult struct {
	value any
	err   error
}

func (m *memoLoader) Load(ref ModuleReference) (any, error) {
	m.mu.Lock()
	r, ok := m.done[ref]
	m.mu.Unlock()
	if ok {
		return r.value, r.err
	}

	v, _, _ := m.group.Do(ref.String(), func() (any, error) {
		m.mu.Lock()
		if r, ok := m.done[ref]; ok {
			m.mu.Unlock()
			return r, nil
		}
		m.mu.Unlock()

		var res memoResult
		res.err = safeCall(func() error {
			var err error
			res.value, err = m.next.Load(ref)
			return err
		})
		if res.err != nil && KindOf(res.err) == KindUnknown {
			res.err = newError(KindInitialization, ref, res.err)
		}

		m.mu.Lock()
		m.done[ref] = res
		m.mu.Unlock()
		return res, nil
	})
	res := v.(memoResult)
	return res.value, res.err
}
