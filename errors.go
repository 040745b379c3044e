package launcher

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a bootstrap failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindResolution: the module identifier does not name a loadable module.
	KindResolution
	// KindSymbol: the module loaded but its entry symbol is absent.
	KindSymbol
	// KindInitialization: the module's own setup failed while loading.
	KindInitialization
	// KindTypeMismatch: the entry value lacks the application lifecycle.
	KindTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindSymbol:
		return "symbol"
	case KindInitialization:
		return "initialization"
	case KindTypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrSymbolNotFound = errors.New("entry symbol not found")
	ErrInitialization = errors.New("module initialization failed")
	ErrTypeMismatch   = errors.New("value does not implement the application lifecycle")
)

// Error is a captured bootstrap failure with its diagnostic context.
type Error struct {
	Kind   ErrorKind
	Module string
	Symbol string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("launcher: %s failure (module %q, symbol %q)", e.Kind, e.Module, e.Symbol)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrModuleNotFound:
		return e.Kind == KindResolution
	case ErrSymbolNotFound:
		return e.Kind == KindSymbol
	case ErrInitialization:
		return e.Kind == KindInitialization
	case ErrTypeMismatch:
		return e.Kind == KindTypeMismatch
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, ref ModuleReference, cause error) *Error {
	return &Error{
		Kind:   kind,
		Module: ref.ModuleName,
		Symbol: ref.EntrySymbol,
		Err:    cause,
	}
}
