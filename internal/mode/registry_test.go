package mode

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cordova"}, Names())
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("electron", Env{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cordova")
}

func TestLookup_AppliesOverrides(t *testing.T) {
	i, err := Lookup("cordova", Env{
		Bin: map[string]string{"cordova": "/opt/cordova"},
		Dir: map[string]string{"cordova": "mobile"},
	})
	require.NoError(t, err)
	c, ok := i.(*Cordova)
	require.True(t, ok, "got %T", i)
	assert.Equal(t, "/opt/cordova", c.Bin)
	assert.Equal(t, "mobile", c.Dir)
}

func TestManager_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.DescriptorFile), []byte(`{"name":"demo"}`), 0644))

	runner := &proc.Recorder{OnRun: func(c proc.Call) error {
		return os.Mkdir(filepath.Join(c.Dir, c.Args[1]), 0755)
	}}
	m := NewManager(Env{Paths: project.Paths{AppDir: dir}, Runner: runner})

	assert.Equal(t, []Status{{Name: "cordova", State: Absent}}, m.Status())

	require.NoError(t, m.Add(context.Background(), "cordova"))
	assert.Equal(t, []Status{{Name: "cordova", State: Present}}, m.Status())

	require.NoError(t, m.Remove("cordova"))
	assert.Equal(t, []Status{{Name: "cordova", State: Absent}}, m.Status())
	assert.Len(t, runner.Calls, 1)

	assert.Error(t, m.Add(context.Background(), "capacitor"))
	assert.Error(t, m.Remove("capacitor"))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "absent", Absent.String())
}
