// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package before building; Go's //go:embed
// bakes it into the binary. The product defaults used when a project
// descriptor leaves fields empty live here as well.
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
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	DefaultProductName string `yaml:"default_product_name"`
	DefaultAppID       string `yaml:"default_app_id"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			CLIName:            "qscaffold",
			DisplayName:        "QScaffold",
			Description:        "Project scaffolding generator for Quasar-style apps",
			HomeDir:            ".qscaffold",
			EnvPrefix:          "QSCAFFOLD",
			GoModule:           "github.com/qscaffold/qscaffold",
			DefaultProductName: "Quasar App",
			DefaultAppID:       "org.cordova.quasar.app",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "qscaffold").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".qscaffold").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "QSCAFFOLD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DefaultProductName is the app display name used when package.json has
// neither productName nor name.
func DefaultProductName() string { load(); return defaults.DefaultProductName }

// DefaultAppID is the reverse-domain app identifier used when package.json
// has no cordovaId.
func DefaultAppID() string { load(); return defaults.DefaultAppID }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "QSCAFFOLD_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
