package launcher

// IOSApplication is the platform application wrapper: the loaded application
// together with the platform configuration it runs under.
type IOSApplication struct {
	App    Application
	Config IOSConfig
}

// IOSDelegate is the application-delegate style entry point.
type IOSDelegate struct {
	boot   *Bootstrap
	config IOSConfig
	app    *IOSApplication
}

// NewIOSDelegate returns a delegate driving boot.
func NewIOSDelegate(boot *Bootstrap, config IOSConfig) *IOSDelegate {
	return &IOSDelegate{boot: boot, config: config}
}

// Bootstrap returns the underlying bootstrap.
func (d *IOSDelegate) Bootstrap() *Bootstrap {
	return d.boot
}

// CreateApplication is the application factory. It returns nil when the
// bootstrap failed. Repeated calls return the same wrapper.
func (d *IOSDelegate) CreateApplication() *IOSApplication {
	if d.boot.Handoff(func(app Application) {
		d.app = &IOSApplication{App: app, Config: d.config}
	}) {
		d.boot.logger.Printf("[launcher] %q wrapped for ios host", d.boot.id)
	}
	return d.app
}

// IOSRunLoop runs the host's application main loop. It calls factory when
// the host has finished launching and returns the process exit status. A nil
// application from factory leaves the host running with nothing installed.
type IOSRunLoop func(argv []string, factory func() *IOSApplication) int

// IOSMain is the process main of an iOS launcher: it hands the delegate's
// factory to the host run loop and returns its exit status.
func IOSMain(argv []string, d *IOSDelegate, run IOSRunLoop) int {
	d.boot.logger.Printf("[launcher] starting ios run loop for %q", d.boot.id)
	return run(argv, d.CreateApplication)
}
