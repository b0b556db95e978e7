package mode

import (
	"context"
	"fmt"
	"os"

	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
)

// Cordova defaults.
const (
	CordovaName = "cordova"
	CordovaBin  = "cordova"
	CordovaDir  = "src-cordova"
)

// Cordova manages the src-cordova folder of an app.
type Cordova struct {
	Paths  project.Paths
	Runner proc.Runner
	Log    *logger.Logger
	// Bin is the cordova executable; defaults to "cordova".
	Bin string
	// Dir is the integration subdirectory; defaults to "src-cordova".
	Dir string
}

// NewCordova returns a Cordova integration for the app at paths.
func NewCordova(paths project.Paths, runner proc.Runner, log *logger.Logger) *Cordova {
	if log == nil {
		log = logger.Nop()
	}
	return &Cordova{
		Paths:  paths,
		Runner: runner,
		Log:    log.Named("app:mode-cordova"),
		Bin:    CordovaBin,
		Dir:    CordovaDir,
	}
}

func (c *Cordova) Name() string { return CordovaName }

func (c *Cordova) dir() string {
	if c.Dir == "" {
		return CordovaDir
	}
	return c.Dir
}

func (c *Cordova) bin() string {
	if c.Bin == "" {
		return CordovaBin
	}
	return c.Bin
}

// IsPresent reports whether the cordova folder exists right now.
func (c *Cordova) IsPresent() bool {
	return c.Paths.DirExists(c.dir())
}

// Add runs "cordova create src-cordova <id> <name>" in the app root.
func (c *Cordova) Add(ctx context.Context) error {
	if c.IsPresent() {
		c.Log.Warn("Cordova support detected already. Aborting.")
		return nil
	}

	desc, err := c.Paths.Descriptor()
	if err != nil {
		c.Log.Error("There was an error trying to install Cordova support", "error", err)
		return &ToolError{Mode: c.Name(), Step: "reading project descriptor", Err: err}
	}
	appName := desc.DisplayName()
	appID := desc.AppID()

	c.Log.Info("Creating Cordova source folder...")

	if err := c.Runner.Run(ctx, c.Paths.AppDir, c.bin(), "create", c.dir(), appID, appName); err != nil {
		c.Log.Error("There was an error trying to install Cordova support", "error", err)
		return &ToolError{Mode: c.Name(), Step: fmt.Sprintf("%s create %s", c.bin(), c.dir()), Err: err}
	}

	c.Log.Info("Cordova support was installed")
	c.Log.Info(fmt.Sprintf("App name was taken from package.json: %q", appName))
	c.Log.Warn("If you want a different App name then remove Cordova support, edit productName field from package.json then add Cordova support again.")
	c.Log.Info(fmt.Sprintf("Please manually add Cordova platforms using Cordova CLI from the newly created %q folder.", c.dir()))
	return nil
}

// Remove deletes the cordova folder recursively.
func (c *Cordova) Remove() error {
	if !c.IsPresent() {
		c.Log.Warn("No Cordova support detected. Aborting.")
		return nil
	}

	target := c.Paths.Join(c.dir())
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("removing %s: %w", target, err)
	}
	c.Log.Info("Cordova support was removed")
	return nil
}
