package cli

import (
	"context"
	"fmt"

	"github.com/qscaffold/qscaffold/internal/config"
	"github.com/qscaffold/qscaffold/internal/mode"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
	"github.com/spf13/cobra"
)

var modeAppDir string

func init() {
	modeCmd.PersistentFlags().StringVar(&modeAppDir, "app-dir", "", "App directory (default: nearest ancestor with "+project.ConfigFile+")")
	modeCmd.AddCommand(modeAddCmd)
	modeCmd.AddCommand(modeRemoveCmd)
	modeCmd.AddCommand(modeListCmd)
	rootCmd.AddCommand(modeCmd)
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Add or remove platform integrations",
	Long: `Manage optional platform integrations of an existing app. Presence is read
from the app directory every time; adding a present mode or removing an absent
one only prints a warning.`,
}

var modeAddCmd = &cobra.Command{
	Use:   "add <mode>",
	Short: "Add a mode to the app",
	Long: `Add a platform integration to the app. For cordova this runs
"cordova create src-cordova <id> <name>" with the id and name taken from package.json.

Example:
  qscaffold mode add cordova`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newModeManager(cmd)
		if err != nil {
			return err
		}
		return m.Add(context.Background(), args[0])
	},
}

var modeRemoveCmd = &cobra.Command{
	Use:   "remove <mode>",
	Short: "Remove a mode from the app",
	Long: `Remove a platform integration and its directory from the app.

Example:
  qscaffold mode remove cordova`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newModeManager(cmd)
		if err != nil {
			return err
		}
		return m.Remove(args[0])
	},
}

var modeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which modes are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newModeManager(cmd)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, s := range m.Status() {
			state := styleDim.Render(s.State.String())
			if s.State == mode.Present {
				state = styleOK.Render(s.State.String())
			}
			fmt.Fprintf(w, "  %-10s %s\n", s.Name, state)
		}
		return nil
	},
}

func newModeManager(cmd *cobra.Command) (*mode.Manager, error) {
	start := modeAppDir
	if start == "" {
		start = "."
	}
	paths, err := project.Resolve(start)
	if err != nil {
		return nil, err
	}

	return mode.NewManager(modeEnv(paths, newRunner(cmd))), nil
}

// modeEnv applies the modes.<name>.bin and modes.<name>.dir settings.
func modeEnv(paths project.Paths, runner proc.Runner) mode.Env {
	env := mode.Env{
		Paths:  paths,
		Runner: runner,
		Log:    log,
		Bin:    make(map[string]string),
		Dir:    make(map[string]string),
	}
	for _, name := range mode.Names() {
		env.Bin[name] = config.ModeBin(name, "")
		env.Dir[name] = config.ModeDir(name, "")
	}
	return env
}
