//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // QSCAFFOLD_HOME
	BinDir  string // Prepended to PATH; holds fake external tools
	WorkDir string // Where apps are generated
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all qscaffold operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("QSCAFFOLD_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// fakeTool installs an executable shell script named name into the env's bin dir.
func fakeTool(t *testing.T, env *testEnv, name, body string) {
	t.Helper()
	path := filepath.Join(env.BinDir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake %s: %v", name, err)
	}
}

// fakeCordova behaves like "cordova create <dir> <id> <name>": it creates the
// directory and records its arguments in args.txt.
const fakeCordova = `if [ "$1" != "create" ]; then exit 2; fi
mkdir -p "$2"
printf '%s\n' "$@" > "$2/args.txt"`

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path not to exist: %s", path)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
