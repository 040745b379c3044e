package commands

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/agiangrant/launcher"
	"github.com/agiangrant/launcher/internal/ffi"
)

// Resolve implements the 'launcher resolve' command
func Resolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to launcher.toml")
	goos := fs.String("goos", runtime.GOOS, "Target OS for the native library name")
	fs.Parse(args)

	config, err := launcher.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	id, err := projectIdentifier(fs.Arg(0), config)
	if err != nil {
		return err
	}

	ref := launcher.Resolve(id)
	fmt.Fprintf(stdout, "project:      %s\n", id)
	fmt.Fprintf(stdout, "module:       %s\n", ref.ModuleName)
	fmt.Fprintf(stdout, "entry symbol: %s\n", ref.EntrySymbol)
	fmt.Fprintf(stdout, "namespace:    %s\n", ref.Namespace())
	fmt.Fprintf(stdout, "package:      %s\n", ref.PackageName())
	fmt.Fprintf(stdout, "library:      %s\n", ffi.LibraryName(*goos, ref.PackageName()))
	return nil
}
