package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the launcher configuration file looked up in the project root.
const ConfigFileName = "launcher.toml"

// FailurePolicy decides what a launcher does once its bootstrap has failed.
type FailurePolicy string

const (
	// FailureSilent logs the failure and presents nothing.
	FailureSilent FailurePolicy = "silent"
	// FailureExit logs the failure and exits the process with status 1.
	FailureExit FailurePolicy = "exit"
)

func (p *FailurePolicy) UnmarshalText(text []byte) error {
	switch v := FailurePolicy(text); v {
	case FailureSilent, FailureExit:
		*p = v
		return nil
	case "":
		*p = FailureSilent
		return nil
	default:
		return fmt.Errorf("unknown failure policy %q (want %q or %q)", v, FailureSilent, FailureExit)
	}
}

func (p FailurePolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// Config is the launcher configuration, read from launcher.toml and then
// overridden from the environment.
type Config struct {
	Project   ProjectConfig   `toml:"project"`
	Native    NativeConfig    `toml:"native"`
	IOS       IOSConfig       `toml:"ios"`
	Android   AndroidConfig   `toml:"android"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
}

type ProjectConfig struct {
	// ID is the project identifier baked into the launcher build.
	ID   string `toml:"id" env:"LAUNCHER_PROJECT"`
	Name string `toml:"name"`
}

// NativeConfig controls loading game modules from shared libraries.
type NativeConfig struct {
	// Library is an explicit library path, bypassing the search.
	Library     string   `toml:"library" env:"LAUNCHER_LIB_PATH"`
	SearchPaths []string `toml:"search_paths" env:"LAUNCHER_SEARCH_PATHS" envSeparator:":"`
}

// IOSConfig is the platform configuration handed to the iOS application
// wrapper together with the loaded application.
type IOSConfig struct {
	OrientationPortrait  bool `toml:"orientation_portrait"`
	OrientationLandscape bool `toml:"orientation_landscape"`
	PreferredFPS         int  `toml:"preferred_fps"`
	StatusBarVisible     bool `toml:"status_bar_visible"`
}

type AndroidConfig struct {
	// PackageName is the Java package of the launcher activity.
	PackageName   string `toml:"package_name"`
	ImmersiveMode bool   `toml:"immersive_mode"`
}

type BootstrapConfig struct {
	FailurePolicy FailurePolicy `toml:"failure_policy" env:"LAUNCHER_FAILURE_POLICY"`
}

// DefaultConfig returns the configuration used when no launcher.toml exists.
func DefaultConfig() Config {
	return Config{
		IOS: IOSConfig{
			OrientationPortrait:  true,
			OrientationLandscape: true,
			PreferredFPS:         60,
		},
		Bootstrap: BootstrapConfig{
			FailurePolicy: FailureSilent,
		},
	}
}

// LoadConfig reads the configuration at path. An empty path means
// launcher.toml in the current directory; a missing file yields the defaults.
// Environment variables are applied last.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = ConfigFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("failed to parse environment: %w", err)
	}

	if config.Project.ID != "" {
		id, err := ParseIdentifier(config.Project.ID)
		if err != nil {
			return config, err
		}
		if config.Android.PackageName == "" {
			config.Android.PackageName = Resolve(id).PackageName() + ".core"
		}
		if config.Project.Name == "" {
			config.Project.Name = string(id)
		}
	}

	return config, nil
}

// Identifier parses the configured project identifier.
func (c Config) Identifier() (ProjectIdentifier, error) {
	if c.Project.ID == "" {
		return "", errors.New("no project identifier configured (set project.id or LAUNCHER_PROJECT)")
	}
	return ParseIdentifier(c.Project.ID)
}

// SaveConfig writes config to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FindProjectRoot walks up from dir looking for launcher.toml, then go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a launcher project (no %s or go.mod found)", ConfigFileName)
		}
		dir = parent
	}
}
