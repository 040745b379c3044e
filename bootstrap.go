package launcher

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

// State is the position of a Bootstrap in its one-shot lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of the single loading attempt: an application or a
// captured failure.
type Outcome struct {
	App Application
	Err error
}

// errInProgress is returned to a caller that re-enters Start while the
// loading attempt is still running, e.g. from a module's own init.
var errInProgress = errors.New("launcher: bootstrap already in progress")

// osExit is swapped out by tests.
var osExit = os.Exit

// Bootstrap drives NotStarted -> Loading -> {Ready, Failed} for one project.
// There is exactly one loading attempt per Bootstrap; later calls return the
// recorded outcome.
type Bootstrap struct {
	id      ProjectIdentifier
	loader  Loader
	logger  *log.Logger
	policy  FailurePolicy
	handoff sync.Once

	mu      sync.Mutex
	state   State
	outcome Outcome
}

// BootstrapOption configures a Bootstrap.
type BootstrapOption func(*Bootstrap)

// WithLogger sets the logger failures and transitions are written to.
func WithLogger(l *log.Logger) BootstrapOption {
	return func(b *Bootstrap) { b.logger = l }
}

// WithFailurePolicy sets what happens after the bootstrap fails.
func WithFailurePolicy(p FailurePolicy) BootstrapOption {
	return func(b *Bootstrap) { b.policy = p }
}

// NewBootstrap returns a bootstrap for id. A nil loader resolves from the
// default registry.
func NewBootstrap(id ProjectIdentifier, loader Loader, opts ...BootstrapOption) *Bootstrap {
	if loader == nil {
		loader = NewRegistryLoader(nil)
	}
	b := &Bootstrap{
		id:     id,
		loader: loader,
		logger: log.Default(),
		policy: FailureSilent,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the project identifier being bootstrapped.
func (b *Bootstrap) ID() ProjectIdentifier {
	return b.id
}

// State returns the current state.
func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Err returns the captured failure, or nil unless the state is StateFailed.
func (b *Bootstrap) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.outcome.Err
}

// Application returns the loaded application, or nil unless the state is
// StateReady.
func (b *Bootstrap) Application() Application {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.outcome.App
}

// Start performs the loading attempt if it has not happened yet and returns
// its outcome. It never panics: every failure, including a panic inside the
// module, is captured in the outcome.
func (b *Bootstrap) Start() Outcome {
	b.mu.Lock()
	switch b.state {
	case StateLoading:
		b.mu.Unlock()
		return Outcome{Err: errInProgress}
	case StateReady, StateFailed:
		o := b.outcome
		b.mu.Unlock()
		return o
	}
	b.state = StateLoading
	b.mu.Unlock()

	ref := Resolve(b.id)
	b.logger.Printf("[launcher] loading %s (namespace %s)", ref, ref.Namespace())

	app, err := b.load(ref)

	b.mu.Lock()
	if err != nil {
		b.state = StateFailed
		b.outcome = Outcome{Err: err}
	} else {
		b.state = StateReady
		b.outcome = Outcome{App: app}
	}
	o := b.outcome
	b.mu.Unlock()

	if err != nil {
		b.fail(err)
	} else {
		b.logger.Printf("[launcher] %s ready", ref)
	}
	return o
}

func (b *Bootstrap) load(ref ModuleReference) (app Application, err error) {
	defer func() {
		if r := recover(); r != nil {
			app = nil
			err = newError(KindInitialization, ref, fmt.Errorf("panic: %v", r))
		}
	}()

	value, err := b.loader.Load(ref)
	if err != nil {
		if KindOf(err) == KindUnknown {
			err = newError(KindInitialization, ref, err)
		}
		return nil, err
	}
	return adapt(ref, value)
}

func (b *Bootstrap) fail(err error) {
	e := &Error{}
	if errors.As(err, &e) {
		b.logger.Printf("[launcher] bootstrap of %q failed: kind=%s module=%q symbol=%q cause=%v",
			b.id, e.Kind, e.Module, e.Symbol, e.Err)
	} else {
		b.logger.Printf("[launcher] bootstrap of %q failed: %v", b.id, err)
	}

	b.policy.apply(b.logger)
}

// Abort reports a failure that happened before a Bootstrap could be built,
// such as a missing or invalid project identifier, and then applies p.
func (p FailurePolicy) Abort(logger *log.Logger, err error) {
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("[launcher] startup failed: %v", err)
	p.apply(logger)
}

func (p FailurePolicy) apply(logger *log.Logger) {
	if p == FailureExit {
		logger.Printf("[launcher] exiting: failure policy is %q", p)
		osExit(1)
	}
}

// Handoff starts the bootstrap and, if it reaches StateReady, passes the
// application to fn. fn is called at most once over the life of b, no matter
// how often Handoff is invoked. It reports whether fn was called by this
// invocation.
func (b *Bootstrap) Handoff(fn func(Application)) bool {
	o := b.Start()
	if o.Err != nil {
		return false
	}
	called := false
	b.handoff.Do(func() {
		fn(o.App)
		called = true
	})
	return called
}
