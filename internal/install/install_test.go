package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/proc"
)

func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"demo"}`), 0644))
	return dir
}

func TestManager(t *testing.T) {
	assert.Equal(t, "yarn", Manager(answers.String("yarn")))
	assert.Equal(t, "npm", Manager(answers.String("npm")))
	assert.Equal(t, "", Manager(answers.Bool(false)))
	assert.Equal(t, "", Manager(answers.Absent()))
}

func TestDependencies_Runs(t *testing.T) {
	dir := projectDir(t)
	rec := &proc.Recorder{}

	warn, err := Dependencies(context.Background(), rec, nil, dir, NPM)
	require.NoError(t, err)
	assert.Empty(t, warn)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "npm install", rec.Calls[0].String())
	assert.Equal(t, dir, rec.Calls[0].Dir)
}

func TestDependencies_MissingBinary(t *testing.T) {
	tests := []struct {
		missing string
		want    string
	}{
		{"node", "Node.js not found"},
		{"yarn", "yarn not found"},
	}
	for _, tt := range tests {
		t.Run(tt.missing, func(t *testing.T) {
			rec := &proc.Recorder{Missing: []string{tt.missing}}
			warn, err := Dependencies(context.Background(), rec, nil, projectDir(t), Yarn)
			require.NoError(t, err)
			assert.Contains(t, warn, tt.want)
			assert.Empty(t, rec.Calls)
		})
	}
}

func TestDependencies_NoDescriptor(t *testing.T) {
	rec := &proc.Recorder{}
	warn, err := Dependencies(context.Background(), rec, nil, t.TempDir(), Yarn)
	require.NoError(t, err)
	assert.Empty(t, warn)
	assert.Empty(t, rec.Calls)
}

func TestDependencies_Failure(t *testing.T) {
	rec := &proc.Recorder{Err: &proc.ExitError{Command: "yarn install", ExitCode: 1}}
	_, err := Dependencies(context.Background(), rec, nil, projectDir(t), Yarn)
	require.Error(t, err)
	var exitErr *proc.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestDependencies_UnsupportedManager(t *testing.T) {
	_, err := Dependencies(context.Background(), &proc.Recorder{}, nil, projectDir(t), "pnpm")
	assert.Error(t, err)
}
