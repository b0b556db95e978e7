package mode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
)

// Env carries what an integration needs to be built.
type Env struct {
	Paths  project.Paths
	Runner proc.Runner
	Log    *logger.Logger
	// Bin and Dir override a mode's default executable and subdirectory.
	// The key is the mode name; empty values keep the default.
	Bin map[string]string
	Dir map[string]string
}

// Factory builds an Integration for one app.
type Factory func(env Env) Integration

// builtins maps each supported mode to its factory.
var builtins = map[string]Factory{
	CordovaName: func(env Env) Integration {
		c := NewCordova(env.Paths, env.Runner, env.Log)
		if b := env.Bin[CordovaName]; b != "" {
			c.Bin = b
		}
		if d := env.Dir[CordovaName]; d != "" {
			c.Dir = d
		}
		return c
	},
}

// Names returns all supported mode names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named integration.
func Lookup(name string, env Env) (Integration, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q: supported modes are %s", name, strings.Join(Names(), ", "))
	}
	if env.Log == nil {
		env.Log = logger.Nop()
	}
	return f(env), nil
}
