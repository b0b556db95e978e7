package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile marks the root of an app.
const ConfigFile = "quasar.conf.js"

// Paths resolves well-known locations inside one app.
type Paths struct {
	AppDir string
}

// FindAppDir walks up from start (inclusive) to the first directory that
// contains quasar.conf.js.
func FindAppDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory; run this inside an app", ConfigFile, start)
		}
		dir = parent
	}
}

// Resolve returns the Paths of the app containing start.
func Resolve(start string) (Paths, error) {
	dir, err := FindAppDir(start)
	if err != nil {
		return Paths{}, err
	}
	return Paths{AppDir: dir}, nil
}

// Join resolves elem relative to the app root.
func (p Paths) Join(elem ...string) string {
	return filepath.Join(append([]string{p.AppDir}, elem...)...)
}

// Descriptor loads the app's package.json.
func (p Paths) Descriptor() (*Descriptor, error) {
	return LoadDescriptor(p.AppDir)
}

// DirExists reports whether rel names an existing directory inside the app.
func (p Paths) DirExists(rel string) bool {
	info, err := os.Stat(p.Join(rel))
	return err == nil && info.IsDir()
}
