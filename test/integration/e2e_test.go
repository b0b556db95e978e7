//go:build integration

package integration_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/mode"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
	"github.com/qscaffold/qscaffold/internal/prompts"
	"github.com/qscaffold/qscaffold/internal/scaffold"
)

// TestFullFlowCreateAndCordova tests the complete flow:
// collect answers -> generate the app -> add cordova -> add again -> remove.
func TestFullFlowCreateAndCordova(t *testing.T) {
	env := setupTestEnv(t)
	fakeTool(t, env, "cordova", fakeCordova)

	// Step 1: Collect answers non-interactively.
	bp := blueprint.Default()
	d, err := prompts.NewDefaults(bp, answers.New(map[string]answers.Value{
		"name":        answers.String("e2e-app"),
		"productName": answers.String("E2E App"),
		"cordovaId":   answers.String("org.example.e2e"),
	}))
	if err != nil {
		t.Fatalf("NewDefaults: %v", err)
	}
	a, err := prompts.Collect(bp, d)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	// Step 2: Generate the app.
	appDir := filepath.Join(env.WorkDir, "e2e-app")
	result, err := scaffold.Generate(bp, a, appDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	assertFileExists(t, filepath.Join(appDir, project.ConfigFile))

	// Step 3: Add cordova from a subdirectory using the real process runner.
	paths, err := project.Resolve(filepath.Join(appDir, "src", "pages"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	runner := &proc.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
	m := mode.NewManager(mode.Env{Paths: paths, Runner: runner, Log: logger.Nop()})

	if err := m.Add(context.Background(), mode.CordovaName); err != nil {
		t.Fatalf("Add: %v", err)
	}
	args := readLines(t, filepath.Join(appDir, mode.CordovaDir, "args.txt"))
	want := []string{"create", mode.CordovaDir, "org.example.e2e", "E2E App"}
	if len(args) != len(want) {
		t.Fatalf("cordova args = %q, want %q", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("cordova arg[%d] = %q, want %q", i, args[i], want[i])
		}
	}

	// Step 4: Adding again is a no-op.
	fakeTool(t, env, "cordova", "exit 1")
	if err := m.Add(context.Background(), mode.CordovaName); err != nil {
		t.Fatalf("second Add should warn, not fail: %v", err)
	}

	// Step 5: Remove.
	if err := m.Remove(mode.CordovaName); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	assertNotExists(t, filepath.Join(appDir, mode.CordovaDir))

	status := m.Status()
	if len(status) != 1 || status[0].State != mode.Absent {
		t.Errorf("Status() = %+v, want cordova absent", status)
	}
}

// TestCordovaToolFailure checks that a failing tool surfaces as a ToolError
// and leaves no cordova folder behind.
func TestCordovaToolFailure(t *testing.T) {
	env := setupTestEnv(t)
	fakeTool(t, env, "cordova", "echo 'boom' >&2\nexit 3")

	appDir := filepath.Join(env.WorkDir, "app")
	bp := blueprint.Default()
	a := answers.New(map[string]answers.Value{"name": answers.String("app")})
	if _, err := scaffold.Generate(bp, a, appDir); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	runner := &proc.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
	m := mode.NewManager(mode.Env{Paths: project.Paths{AppDir: appDir}, Runner: runner})
	err := m.Add(context.Background(), mode.CordovaName)

	var toolErr *mode.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Add error = %v, want *mode.ToolError", err)
	}
	var exitErr *proc.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode != 3 {
		t.Errorf("expected exit status 3, got %v", err)
	}
	assertNotExists(t, filepath.Join(appDir, mode.CordovaDir))
}
