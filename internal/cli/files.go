package cli

import (
	"fmt"

	"github.com/qscaffold/qscaffold/internal/prompts"
	"github.com/qscaffold/qscaffold/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	filesAnswersFile string
	filesBlueprint   string
	filesExplain     bool
	filesAll         bool
)

func init() {
	addAnswerFlags(filesCmd, &filesAnswersFile, &filesBlueprint)
	filesCmd.Flags().BoolVar(&filesExplain, "explain", false, "Show the rule that decided each file")
	filesCmd.Flags().BoolVar(&filesAll, "all", false, "List excluded files too")
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files create would generate",
	Long: `Evaluate the blueprint filters against the default answers (merged with --answers)
and print the selected template files without writing anything.

Example:
  qscaffold files --answers answers.yaml --explain`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, err := loadBlueprint(filesBlueprint)
		if err != nil {
			return err
		}
		overrides, err := loadOverrides(bp, filesAnswersFile, "app")
		if err != nil {
			return err
		}
		d, err := prompts.NewDefaults(bp, overrides)
		if err != nil {
			return err
		}
		a, err := prompts.Collect(bp, d)
		if err != nil {
			return err
		}

		decisions, err := scaffold.Plan(bp, a)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, dec := range decisions {
			if !dec.Included && !filesAll {
				continue
			}
			mark := "+"
			if !dec.Included {
				mark = "-"
			}
			if !filesExplain {
				if filesAll {
					fmt.Fprintf(w, "%s %s\n", mark, dec.Path)
				} else {
					fmt.Fprintln(w, dec.Path)
				}
				continue
			}
			reason := styleDim.Render("(no rule)")
			if dec.Matched {
				reason = fmt.Sprintf("%s when %s", dec.Rule.Pattern, dec.Rule.Source)
			}
			fmt.Fprintf(w, "%s %-45s %s\n", mark, dec.Path, reason)
		}
		return nil
	},
}
