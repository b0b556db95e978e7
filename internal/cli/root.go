package cli

import (
	"github.com/qscaffold/qscaffold/internal/branding"
	"github.com/qscaffold/qscaffold/internal/config"
	"github.com/qscaffold/qscaffold/internal/logger"
	"github.com/qscaffold/qscaffold/internal/proc"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string

	// log is the root logger, set up before every command runs.
	log = logger.Nop()

	// newRunner builds the runner used for external tools. Tests replace it.
	newRunner = func(cmd *cobra.Command) proc.Runner {
		return &proc.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	}
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Quasar-style Vue applications from a prompt-driven blueprint
and manages optional platform integrations (Cordova) of an existing app.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.LogLevel()
		if logLevel != "" {
			level = logLevel
		}
		log = logger.NewWithWriter(cmd.ErrOrStderr(), level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
