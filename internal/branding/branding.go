// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed. Forks that ship
// the tool under another name edit that file and rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "txsync",
			DisplayName: "txsync",
			Description: "Pull translations from Transifex and normalize locale file headers",
			HomeDir:     ".txsync",
			EnvPrefix:   "TXSYNC",
			ProjectFile: "txsync",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "txsync").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".txsync").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TXSYNC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectFile returns the base name (without extension) of the per-project
// config file, e.g. "txsync" for txsync.yaml.
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TOOL") → "TXSYNC_TOOL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
