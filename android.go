package launcher

// AndroidHost is the native application host of an Android activity. Once
// initialized it owns the application and drives its lifecycle.
type AndroidHost interface {
	Initialize(app Application)
}

// Bundle is the saved instance state the activity is created with. It is nil
// on a fresh start.
type Bundle map[string]any

// AndroidLauncher is the activity-style entry point.
type AndroidLauncher struct {
	boot *Bootstrap
}

// NewAndroidLauncher returns an entry point driving boot.
func NewAndroidLauncher(boot *Bootstrap) *AndroidLauncher {
	return &AndroidLauncher{boot: boot}
}

// Bootstrap returns the underlying bootstrap.
func (l *AndroidLauncher) Bootstrap() *Bootstrap {
	return l.boot
}

// OnCreate is the activity creation hook. On success it initializes host with
// the loaded application; on failure it returns without installing anything.
// The activity may be recreated, so OnCreate can run many times, but the host
// is initialized at most once per process.
func (l *AndroidLauncher) OnCreate(host AndroidHost, savedState Bundle) {
	if savedState != nil {
		l.boot.logger.Printf("[launcher] activity recreated for %q with %d saved entries", l.boot.id, len(savedState))
	}
	if l.boot.Handoff(host.Initialize) {
		l.boot.logger.Printf("[launcher] %q handed to android host", l.boot.id)
	}
}
