package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
)

// Package managers understood by Dependencies.
const (
	Yarn = "yarn"
	NPM  = "npm"
)

// Manager returns the package manager selected by an autoInstall answer, or
// "" when installation was declined or not answered.
func Manager(v answers.Value) string {
	switch v.Str() {
	case Yarn, NPM:
		return v.Str()
	default:
		return ""
	}
}

// Dependencies runs "<manager> install" in dir. A missing descriptor or an
// unavailable binary is not an error; the returned warning explains what was
// skipped.
func Dependencies(ctx context.Context, runner proc.Runner, log *logger.Logger, dir, manager string) (string, error) {
	if log == nil {
		log = logger.Nop()
	}
	if manager != Yarn && manager != NPM {
		return "", fmt.Errorf("unsupported package manager %q", manager)
	}

	if _, err := os.Stat(filepath.Join(dir, project.DescriptorFile)); err != nil {
		return "", nil // no package.json, nothing to do
	}

	if _, err := runner.LookPath("node"); err != nil {
		return "Node.js not found, skipping dependency installation", nil
	}
	if _, err := runner.LookPath(manager); err != nil {
		return fmt.Sprintf("%s not found, skipping dependency installation", manager), nil
	}

	log.Info("Installing dependencies", "manager", manager, "dir", dir)
	if err := runner.Run(ctx, dir, manager, "install"); err != nil {
		return "", fmt.Errorf("%s install in %s: %w", manager, dir, err)
	}
	return "", nil
}
