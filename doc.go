// Package launcher bootstraps a game on a mobile platform.
//
// A launcher build carries one project identifier. At process start the
// platform entry point (AndroidLauncher.OnCreate or IOSDelegate.CreateApplication)
// resolves the identifier to a module reference, loads the module, checks
// that its entry value implements Application and hands it to the native
// host, which drives it for the rest of the process.
//
// Modules are found in a static registry populated from init functions:
//
//	func init() {
//		launcher.RegisterApplication("breakout", func() launcher.Application {
//			return NewGame()
//		})
//	}
//
// or, failing that, in a shared library named after the module
// (libbreakout.so, libbreakout.dylib, breakout.dll).
//
// Every failure is captured in the Bootstrap and logged; none escapes to the
// host. What happens next is decided by the configured FailurePolicy.
package launcher
