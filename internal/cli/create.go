package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
	"github.com/qscaffold/qscaffold/internal/branding"
	"github.com/qscaffold/qscaffold/internal/config"
	"github.com/qscaffold/qscaffold/internal/install"
	"github.com/qscaffold/qscaffold/internal/prompts"
	"github.com/qscaffold/qscaffold/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var (
	createAnswersFile string
	createDefaults    bool
	createBlueprint   string
	createNoInstall   bool
	createAccessible  bool
)

func init() {
	addAnswerFlags(createCmd, &createAnswersFile, &createBlueprint)
	createCmd.Flags().BoolVar(&createDefaults, "defaults", false, "Do not prompt; use defaults merged with --answers")
	createCmd.Flags().BoolVar(&createNoInstall, "no-install", false, "Skip dependency installation")
	createCmd.Flags().BoolVar(&createAccessible, "accessible", false, "Use line-based prompts instead of the interactive form")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [dir]",
	Short: "Scaffold a new app",
	Long: `Ask the blueprint questions and generate a new app into dir (default: current directory).
The directory must be empty or missing.

Examples:
  qscaffold create my-app
  qscaffold create my-app --defaults --answers answers.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := "."
		if len(args) == 1 {
			outDir = args[0]
		}
		absOut, err := filepath.Abs(outDir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", outDir, err)
		}

		bp, err := loadBlueprint(createBlueprint)
		if err != nil {
			return err
		}

		var asker prompts.Asker
		if createDefaults || createAnswersFile != "" {
			overrides, err := loadOverrides(bp, createAnswersFile, filepath.Base(absOut))
			if err != nil {
				return err
			}
			d, err := prompts.NewDefaults(bp, overrides)
			if err != nil {
				return err
			}
			asker = d
		} else {
			asker = &prompts.Interactive{Accessible: createAccessible}
		}

		a, err := prompts.Collect(bp, asker)
		if err != nil {
			return err
		}
		if name, _ := a.Get("name"); name.Str() != "" {
			if err := validateName(name.Str()); err != nil {
				return err
			}
		}

		createLog := log.Named("app:create")
		createLog.Debug("Collected answers", "answers", a.String())

		result, err := scaffold.Generate(bp, a, absOut)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), result)

		manager := install.Manager(answerOf(a, "autoInstall"))
		installed := false
		if manager != "" && !createNoInstall {
			warn, err := install.Dependencies(context.Background(), newRunner(cmd), log.Named("app:install"), absOut, manager)
			if err != nil {
				return err
			}
			if warn != "" {
				createLog.Warn(warn)
			} else {
				installed = true
			}
		}

		printNextSteps(cmd.OutOrStdout(), outDir, manager, installed)
		return nil
	},
}

// addAnswerFlags registers the flags shared by commands that build an answer set.
func addAnswerFlags(cmd *cobra.Command, answersFile, blueprintFile *string) {
	cmd.Flags().StringVar(answersFile, "answers", "", "YAML or JSON file with prompt answers")
	cmd.Flags().StringVar(blueprintFile, "blueprint", "", "Blueprint file to use instead of the built-in app blueprint")
}

func loadBlueprint(path string) (*blueprint.Blueprint, error) {
	if path == "" {
		return blueprint.Default(), nil
	}
	return blueprint.LoadFile(path)
}

// loadOverrides reads the answers file and fills in what the environment
// implies: the project name from the directory and the package manager from
// config.
func loadOverrides(bp *blueprint.Blueprint, path, dirName string) (answers.Set, error) {
	overrides := answers.Empty()
	if path != "" {
		set, err := prompts.LoadAnswersFile(path)
		if err != nil {
			return answers.Set{}, err
		}
		overrides = set
	}

	if _, ok := bp.Prompt("name"); ok {
		if _, answered := overrides.Get("name"); !answered {
			overrides = overrides.With("name", answers.String(strings.ToLower(dirName)))
		}
	}

	if _, ok := bp.Prompt("autoInstall"); ok {
		if _, answered := overrides.Get("autoInstall"); !answered {
			switch pm := config.PackageManager(); pm {
			case "":
			case "none", "false":
				overrides = overrides.With("autoInstall", answers.Bool(false))
			default:
				overrides = overrides.With("autoInstall", answers.String(pm))
			}
		}
	}
	return overrides, nil
}

func answerOf(a answers.Set, key string) answers.Value {
	v, _ := a.Get(key)
	return v
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "%s %s\n", styleOK.Render("Created app at"), result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\n"+styleWarn.Render("Warnings:"))
		for _, wn := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", wn)
		}
	}
}

func printNextSteps(w io.Writer, dir, manager string, installed bool) {
	fmt.Fprintln(w, "\n"+header("Next steps"))
	step := 1
	if dir != "." && dir != "" {
		fmt.Fprintf(w, "  %d. %s\n", step, styleCmd.Render("cd "+dir))
		step++
	}
	if !installed {
		if manager == "" {
			manager = install.Yarn
		}
		fmt.Fprintf(w, "  %d. %s\n", step, styleCmd.Render(manager+" install"))
		step++
	}
	fmt.Fprintf(w, "  %d. %s\n", step, styleCmd.Render("quasar dev"))
	step++
	fmt.Fprintf(w, "  %d. %s %s\n", step, styleCmd.Render(branding.CLIName()+" mode add cordova"), styleDim.Render("(optional, for mobile builds)"))
}
