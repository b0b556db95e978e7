package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/qscaffold/qscaffold/internal/blueprint"
	"github.com/qscaffold/qscaffold/internal/config"
	"github.com/qscaffold/qscaffold/internal/install"
	"github.com/qscaffold/qscaffold/internal/mode"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/qscaffold/qscaffold/internal/project"
	"github.com/spf13/cobra"
)

var (
	doctorBlueprint string
	doctorAppDir    string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorBlueprint, "blueprint", "", "Validate a blueprint file instead of the built-in one")
	doctorCmd.Flags().StringVar(&doctorAppDir, "app-dir", "", "App directory to inspect (default: nearest ancestor with "+project.ConfigFile+")")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for qscaffold and the current app",
	Long: `Validate the blueprint, check that the external tools are on PATH and,
inside an app, check the installed Node.js against engines.node of package.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		runner := newRunner(cmd)

		bpErr := runBlueprintCheck(w, doctorBlueprint)
		nodeVersion := runRuntimeCheck(w, runner)

		start := doctorAppDir
		if start == "" {
			start = "."
		}
		runAppCheck(w, runner, start, nodeVersion)

		return bpErr
	},
}

func runBlueprintCheck(w io.Writer, path string) error {
	fmt.Fprintln(w, header("Blueprint"))

	var (
		data []byte
		name = "built-in app blueprint"
	)
	if path == "" {
		data = blueprint.DefaultSource()
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			check(w, "fail", "Cannot read %s: %v", path, err)
			return fmt.Errorf("reading blueprint: %w", err)
		}
		data, name = b, path
	}

	result, err := blueprint.Validate(data)
	if err != nil {
		check(w, "fail", "%s: %v", name, err)
		return fmt.Errorf("blueprint validation failed: %w", err)
	}
	if !result.Valid {
		check(w, "fail", "%s: %d validation issue(s):", name, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return fmt.Errorf("blueprint %s has %d validation issue(s)", name, len(result.Issues))
	}

	bp, err := blueprint.Parse(data)
	if err != nil {
		check(w, "fail", "%s: %v", name, err)
		return fmt.Errorf("blueprint %s: %w", name, err)
	}
	check(w, "ok", "%s: %d prompts, %d filter rules", name, len(bp.Prompts), len(bp.Rules().Rules()))
	return nil
}

// runRuntimeCheck reports the external tools and returns the Node.js version,
// or "" when node is unavailable.
func runRuntimeCheck(w io.Writer, runner proc.Runner) string {
	fmt.Fprintln(w, "\n"+header("Runtime"))

	nodeVersion := ""
	if path, err := runner.LookPath("node"); err != nil {
		check(w, "miss", "node not found")
	} else {
		v, err := runner.Output(context.Background(), "", "node", "--version")
		if err != nil {
			check(w, "warn", "node found at %s but --version failed: %v", path, err)
		} else {
			nodeVersion = v
			check(w, "ok", "node %s found at %s", v, path)
		}
	}

	for _, bin := range []string{install.Yarn, install.NPM, config.ModeBin(mode.CordovaName, mode.CordovaBin)} {
		checkBinary(w, runner, bin)
	}
	return nodeVersion
}

func checkBinary(w io.Writer, runner proc.Runner, name string) {
	path, err := runner.LookPath(name)
	if err != nil {
		check(w, "miss", "%s not found", name)
		return
	}
	check(w, "ok", "%s found at %s", name, path)
}

func runAppCheck(w io.Writer, runner proc.Runner, start, nodeVersion string) {
	fmt.Fprintln(w, "\n"+header("App"))

	paths, err := project.Resolve(start)
	if err != nil {
		check(w, "warn", "Not inside an app: %v", err)
		return
	}
	check(w, "ok", "App directory %s", paths.AppDir)

	desc, err := paths.Descriptor()
	if err != nil {
		check(w, "fail", "Cannot read %s: %v", project.DescriptorFile, err)
		return
	}
	check(w, "ok", "%s (%s), id %s", desc.DisplayName(), desc.Name, desc.AppID())

	if constraint := desc.Engines["node"]; constraint != "" && nodeVersion != "" {
		ok, err := project.CheckEngine(constraint, nodeVersion)
		switch {
		case err != nil:
			check(w, "warn", "Cannot check engines.node: %v", err)
		case ok:
			check(w, "ok", "node %s satisfies engines.node %q", nodeVersion, constraint)
		default:
			check(w, "fail", "node %s does not satisfy engines.node %q", nodeVersion, constraint)
		}
	}

	for _, s := range mode.NewManager(modeEnv(paths, runner)).Status() {
		check(w, "ok", "mode %s: %s", s.Name, s.State)
	}
}
