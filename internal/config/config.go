package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qscaffold/qscaffold/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyLogLevel       = "log.level"
	KeyPackageManager = "package_manager"
)

// Defaults applied before the config file and environment are read.
var defaults = map[string]string{
	KeyLogLevel:       "info",
	KeyPackageManager: "",
}

// Dir returns the path to the config directory (~/.qscaffold/).
// QSCAFFOLD_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// LogLevel returns the configured log level.
func LogLevel() string { return Get(KeyLogLevel) }

// PackageManager returns the package manager used for auto install when no
// answer selects one ("yarn", "npm" or empty for none).
func PackageManager() string { return Get(KeyPackageManager) }

// ModeBin returns the configured binary for an integration mode, or fallback
// when none is set. The key is modes.<name>.bin.
func ModeBin(name, fallback string) string {
	if v := Get("modes." + name + ".bin"); v != "" {
		return v
	}
	return fallback
}

// ModeDir returns the configured subdirectory for an integration mode, or
// fallback when none is set. The key is modes.<name>.dir.
func ModeDir(name, fallback string) string {
	if v := Get("modes." + name + ".dir"); v != "" {
		return v
	}
	return fallback
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
