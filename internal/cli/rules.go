package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/suggest"
)

// RulesCheckResult holds rules file validation results.
type RulesCheckResult struct {
	Valid bool   `json:"valid"`
	Path  string `json:"path"`
	Rules int    `json:"rules"`
}

// NewRulesCommand creates the rules command group.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate suggestion rule tables",
	}
	cmd.AddCommand(newRulesCheckCommand(rootOpts))
	cmd.AddCommand(newRulesShowCommand(rootOpts))
	return cmd
}

func newRulesCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a rules file without using it",
		Long: `Validate a YAML or CUE suggestion rules file.

Unknown fields, empty keywords and empty suggestions are rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCheck(rootOpts, args[0], cmd)
		},
	}
}

func runRulesCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	table, err := suggest.LoadTable(path)
	if err != nil {
		_ = formatter.Error(ErrCodeRules, err.Error(), map[string]string{"path": path})
		// Validation failures = exit code 1
		return codedError(ExitFailure, ErrCodeRules, "rules file is invalid", err)
	}

	formatter.VerboseLog("Loaded %d rule(s) from %s", len(table.Rules), path)
	return formatter.Render(RulesCheckResult{Valid: true, Path: path, Rules: len(table.Rules)}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ %s: %d rule(s) valid\n", path, len(table.Rules))
		return err
	})
}

func newRulesShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the rule table in effect",
		Long: `Print the rule table suggestions are drawn from: the file named by
--rules (or ` + EnvRules + `), or the built-in table. Rules are tried in order
and the first keyword found in the journal wins.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			table := suggest.DefaultTable()
			if rootOpts.Rules != "" {
				loaded, err := suggest.LoadTable(rootOpts.Rules)
				if err != nil {
					return fail(formatter, codedError(ExitCommandError, ErrCodeRules, "failed to load rules", err))
				}
				table = loaded
			}

			return formatter.Render(table, func(w io.Writer) error {
				for i, r := range table.Rules {
					fmt.Fprintf(w, "%d. %q -> %s\n", i+1, r.Keyword, r.Suggestion)
				}
				fmt.Fprintf(w, "default:  %s\n", table.Default)
				fmt.Fprintf(w, "fallback: %s\n", table.Fallback)
				return nil
			})
		},
	}
}
