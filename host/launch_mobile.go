//go:build android || ios

package host

import (
	"log"
	"os"
	"runtime"

	"github.com/agiangrant/launcher"
)

// Launch is the whole process main of a mobile launcher. projectID is used
// when neither launcher.toml nor $LAUNCHER_PROJECT names a project. Launch
// does not return while the process is alive.
func Launch(projectID string) {
	runtime.LockOSThread()
	log.Printf("[launcher] runtime.GOOS = %s, runtime.GOARCH = %s", runtime.GOOS, runtime.GOARCH)

	h := New(nil)

	config, err := launcher.LoadConfig("")
	if err == nil && config.Project.ID == "" {
		config.Project.ID = projectID
	}
	var boot *launcher.Bootstrap
	if err == nil {
		boot, err = launcher.FromConfig(config)
	}
	if err != nil {
		// config keeps whatever was parsed before the error, policy included;
		// under the silent policy the host runs with a blank screen
		config.Bootstrap.FailurePolicy.Abort(nil, err)
		Main(h)
		return
	}

	if launcher.CurrentPlatform() == launcher.PlatformIOS {
		d := launcher.NewIOSDelegate(boot, config.IOS)
		os.Exit(launcher.IOSMain(os.Args, d, func(argv []string, factory func() *launcher.IOSApplication) int {
			if app := factory(); app != nil {
				h.Initialize(app.App)
			}
			Main(h)
			return 0
		}))
	}

	launcher.NewAndroidLauncher(boot).OnCreate(h, nil)
	Main(h)
}
