//go:build android || ios

// Command gamelauncher is the generic mobile launcher. The project it starts
// comes from launcher.toml, $LAUNCHER_PROJECT, or the identifier baked in at
// build time:
//
//	gomobile build -target android -ldflags "-X main.projectID=breakout" ./cmd/gamelauncher
//
// Statically linked modules are registered by blank imports below; anything
// else is loaded from a shared library named after the project.
package main

import (
	"github.com/agiangrant/launcher/host"

	_ "github.com/agiangrant/launcher/examples/breakout"
)

var projectID = "breakout"

func main() {
	host.Launch(projectID)
}
