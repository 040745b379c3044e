// Package commands implements the launcher CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/agiangrant/launcher"
)

// stdout is where commands print; tests replace it.
var stdout io.Writer = os.Stdout

// projectIdentifier returns the identifier from the first positional
// argument, or from the configuration when there is none.
func projectIdentifier(arg string, config launcher.Config) (launcher.ProjectIdentifier, error) {
	if arg != "" {
		return launcher.ParseIdentifier(arg)
	}
	return config.Identifier()
}

func writeTemplate(path, tmplStr string, data interface{}) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
