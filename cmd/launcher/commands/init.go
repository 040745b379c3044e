package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/launcher"
)

// Init implements the 'launcher init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	id := fs.String("id", "", "Project identifier (defaults to the current directory name)")
	name := fs.String("name", "", "Display name")
	dir := fs.String("dir", ".", "Project directory")
	policy := fs.String("failure-policy", string(launcher.FailureSilent), "What to do when the bootstrap fails (silent or exit)")
	force := fs.Bool("force", false, "Overwrite an existing launcher.toml")
	fs.Parse(args)

	projectID := *id
	if projectID == "" {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return err
		}
		projectID = filepath.Base(abs)
	}
	parsed, err := launcher.ParseIdentifier(projectID)
	if err != nil {
		return err
	}

	path := filepath.Join(*dir, launcher.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	config := launcher.DefaultConfig()
	config.Project.ID = string(parsed)
	config.Project.Name = *name
	if config.Project.Name == "" {
		config.Project.Name = string(parsed)
	}
	config.Android.PackageName = launcher.Resolve(parsed).PackageName() + ".core"
	if err := config.Bootstrap.FailurePolicy.UnmarshalText([]byte(*policy)); err != nil {
		return err
	}

	if err := launcher.SaveConfig(path, config); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "✓ Created %s for %s\n", path, parsed)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintln(stdout, "  1. Check the module resolves:")
	fmt.Fprintf(stdout, "     launcher resolve %s\n", parsed)
	fmt.Fprintln(stdout, "  2. Generate the mobile entry package:")
	fmt.Fprintln(stdout, "     launcher create-mobile")
	return nil
}
