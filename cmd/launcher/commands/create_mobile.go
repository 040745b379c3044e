package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/launcher"
)

// CreateMobile implements the 'launcher create-mobile' command. It writes
// the one file a project needs to become a mobile app: a main package that
// bakes in the project identifier and links the module.
func CreateMobile(args []string) error {
	fs := flag.NewFlagSet("create-mobile", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to launcher.toml")
	outputDir := fs.String("output", "mobile", "Output directory for the entry package")
	moduleImport := fs.String("import", "", "Import path of a statically linked game module")
	force := fs.Bool("force", false, "Overwrite existing files")
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

	mainPath := filepath.Join(*outputDir, "main.go")
	if _, err := os.Stat(mainPath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", mainPath)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", *outputDir, err)
	}

	data := MobileTemplateData{
		ProjectID:    string(id),
		PackageName:  ref.PackageName(),
		ModuleImport: *moduleImport,
	}
	if err := writeTemplate(mainPath, mobileMainTemplate, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", mainPath, err)
	}

	fmt.Fprintf(stdout, "  ✓ Created %s\n", mainPath)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Build with:")
	bundleID := config.Android.PackageName
	if bundleID == "" {
		bundleID = ref.PackageName() + ".core"
	}
	target := buildTarget(*outputDir)
	fmt.Fprintf(stdout, "  gomobile build -target android -o %s.apk %s\n", ref.PackageName(), target)
	fmt.Fprintf(stdout, "  gomobile build -target ios -bundleid %s %s\n", bundleID, target)
	return nil
}

// buildTarget returns dir as a go build package argument. Relative
// directories need a ./ prefix to be read as paths, not import paths.
func buildTarget(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return "./" + filepath.ToSlash(filepath.Clean(dir))
}

type MobileTemplateData struct {
	ProjectID    string
	PackageName  string
	ModuleImport string
}

const mobileMainTemplate = `//go:build android || ios

// Command {{.PackageName}} launches the {{.ProjectID}} project.
package main

import (
	"github.com/agiangrant/launcher/host"
{{- if .ModuleImport}}

	_ "{{.ModuleImport}}"
{{- end}}
)

func main() {
	host.Launch("{{.ProjectID}}")
}
`
