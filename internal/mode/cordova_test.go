package mode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
)

type fixture struct {
	paths  project.Paths
	runner *proc.Recorder
	logs   *observer.ObservedLogs
	mode   *Cordova
}

func newFixture(t *testing.T, pkg string) *fixture {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.ConfigFile), []byte("module.exports = {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.DescriptorFile), []byte(pkg), 0644))

	core, logs := observer.New(zapcore.DebugLevel)
	paths := project.Paths{AppDir: dir}
	runner := &proc.Recorder{}
	// Simulate "cordova create" producing its folder.
	runner.OnRun = func(c proc.Call) error {
		return os.MkdirAll(filepath.Join(c.Dir, c.Args[1], "www"), 0755)
	}
	return &fixture{
		paths:  paths,
		runner: runner,
		logs:   logs,
		mode:   NewCordova(paths, runner, logger.NewWithCore(core)),
	}
}

func (f *fixture) warnings() []string {
	var out []string
	for _, e := range f.logs.FilterLevelExact(zapcore.WarnLevel).All() {
		out = append(out, e.Message)
	}
	return out
}

func TestCordovaAdd_InvokesTool(t *testing.T) {
	f := newFixture(t, `{"name":"demo","productName":"Demo App","cordovaId":"com.example.demo"}`)

	require.NoError(t, f.mode.Add(context.Background()))

	require.Len(t, f.runner.Calls, 1)
	call := f.runner.Calls[0]
	assert.Equal(t, f.paths.AppDir, call.Dir)
	assert.Equal(t, "cordova", call.Name)
	assert.Equal(t, []string{"create", "src-cordova", "com.example.demo", "Demo App"}, call.Args)
	assert.True(t, f.mode.IsPresent())
	assert.Equal(t, Present, StateOf(f.mode))

	infos := f.logs.FilterMessage("Cordova support was installed").All()
	assert.Len(t, infos, 1)
	assert.Equal(t, "app:mode-cordova", infos[0].LoggerName)
	assert.NotEmpty(t, f.logs.FilterMessage(`App name was taken from package.json: "Demo App"`).All())
}

func TestCordovaAdd_DescriptorDefaults(t *testing.T) {
	f := newFixture(t, `{}`)
	require.NoError(t, f.mode.Add(context.Background()))
	require.Len(t, f.runner.Calls, 1)
	assert.Equal(t, []string{"create", "src-cordova", "org.cordova.quasar.app", "Quasar App"}, f.runner.Calls[0].Args)
}

func TestCordovaAdd_NameFallback(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	require.NoError(t, f.mode.Add(context.Background()))
	require.Len(t, f.runner.Calls, 1)
	assert.Equal(t, []string{"create", "src-cordova", "org.cordova.quasar.app", "demo"}, f.runner.Calls[0].Args)
}

func TestCordovaAdd_Idempotent(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)

	require.NoError(t, f.mode.Add(context.Background()))
	require.NoError(t, f.mode.Add(context.Background()))

	assert.Len(t, f.runner.Calls, 1)
	assert.Contains(t, f.warnings(), "Cordova support detected already. Aborting.")
	assert.Empty(t, f.logs.FilterLevelExact(zapcore.ErrorLevel).All())
}

func TestCordovaAdd_AlreadyPresentMakesNoCalls(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	require.NoError(t, os.Mkdir(f.paths.Join("src-cordova"), 0755))

	require.NoError(t, f.mode.Add(context.Background()))
	assert.Empty(t, f.runner.Calls)
	assert.Equal(t, []string{"Cordova support detected already. Aborting."}, f.warnings())
}

func TestCordovaAdd_ToolFailure(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	f.runner.Err = &proc.ExitError{Command: "cordova create", ExitCode: 1}

	err := f.mode.Add(context.Background())
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "cordova", toolErr.Mode)
	assert.Contains(t, toolErr.Step, "cordova create src-cordova")

	var exitErr *proc.ExitError
	assert.True(t, errors.As(err, &exitErr))

	errs := f.logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "There was an error trying to install Cordova support", errs[0].Message)
	assert.Empty(t, f.logs.FilterMessage("Cordova support was installed").All())
}

func TestCordovaAdd_MissingDescriptor(t *testing.T) {
	f := newFixture(t, `{}`)
	require.NoError(t, os.Remove(f.paths.Join(project.DescriptorFile)))

	err := f.mode.Add(context.Background())
	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "reading project descriptor", toolErr.Step)
	assert.Empty(t, f.runner.Calls)
}

func TestCordovaAdd_RereadsPresence(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	require.NoError(t, f.mode.Add(context.Background()))

	// Deleted behind the manager's back: the next Add must see it as absent.
	require.NoError(t, os.RemoveAll(f.paths.Join("src-cordova")))
	require.NoError(t, f.mode.Add(context.Background()))
	assert.Len(t, f.runner.Calls, 2)
}

func TestCordovaRemove(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	require.NoError(t, f.mode.Add(context.Background()))
	require.FileExists(t, f.paths.Join(project.DescriptorFile))

	require.NoError(t, f.mode.Remove())
	assert.False(t, f.mode.IsPresent())
	assert.NoDirExists(t, f.paths.Join("src-cordova"))
	assert.NotEmpty(t, f.logs.FilterMessage("Cordova support was removed").All())
}

func TestCordovaRemove_AbsentIsNoop(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	sibling := f.paths.Join("src")
	require.NoError(t, os.Mkdir(sibling, 0755))

	require.NoError(t, f.mode.Remove())
	assert.DirExists(t, sibling)
	assert.Equal(t, []string{"No Cordova support detected. Aborting."}, f.warnings())
	assert.Empty(t, f.logs.FilterMessage("Cordova support was removed").All())
}

func TestCordova_CustomBinAndDir(t *testing.T) {
	f := newFixture(t, `{"name":"demo"}`)
	f.mode.Bin = "/opt/cordova/bin/cordova"
	f.mode.Dir = "mobile"

	require.NoError(t, f.mode.Add(context.Background()))
	require.Len(t, f.runner.Calls, 1)
	assert.Equal(t, "/opt/cordova/bin/cordova", f.runner.Calls[0].Name)
	assert.Equal(t, "mobile", f.runner.Calls[0].Args[1])
	assert.DirExists(t, f.paths.Join("mobile"))
}
