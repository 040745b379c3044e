package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/agiangrant/launcher"
)

// Check implements the 'launcher check' command. It runs the same bootstrap
// a device would, against the native library, and reports the outcome.
func Check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to launcher.toml")
	lib := fs.String("lib", "", "Explicit library path")
	search := fs.String("search", "", "Colon-separated library search directories")
	verbose := fs.Bool("verbose", false, "Log bootstrap transitions")
	fs.Parse(args)

	config, err := launcher.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	id, err := projectIdentifier(fs.Arg(0), config)
	if err != nil {
		return err
	}
	if *lib != "" {
		config.Native.Library = *lib
	}
	if *search != "" {
		config.Native.SearchPaths = append(strings.Split(*search, ":"), config.Native.SearchPaths...)
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger.SetOutput(stdout)
	}

	loader := launcher.NewNativeLoader(config.Native)
	boot := launcher.NewBootstrap(id, loader, launcher.WithLogger(logger))
	fmt.Fprintf(stdout, "library: %s\n", loader.LibraryPath(launcher.Resolve(id)))

	o := boot.Start()
	fmt.Fprintf(stdout, "state:   %s\n", boot.State())
	if o.Err != nil {
		var e *launcher.Error
		if errors.As(o.Err, &e) {
			fmt.Fprintf(stdout, "kind:    %s\n", e.Kind)
		}
		return o.Err
	}
	fmt.Fprintf(stdout, "entry:   %T\n", o.App)
	return nil
}
