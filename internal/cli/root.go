package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/clock"
	"github.com/roach88/codelog/internal/tracker"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvDatabase = "CODELOG_DB"
	EnvRules    = "CODELOG_RULES"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string
	Rules    string

	// Clock and ActionIDs override the tracker defaults (for testing).
	Clock     clock.Clock
	ActionIDs tracker.ActionIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the CodeLog CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command bound to opts. Flags
// parsed on the command line overwrite the matching fields.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codelog",
		Short: "CodeLog - a local coding-practice tracker",
		Long: `CodeLog keeps a daily practice journal and a log of solved problems
for each local account, and derives per-platform counts, a growth chart and
a study suggestion from them.

All data lives in a single SQLite file (default ~/.codelog/codelog.db).`,
		// Commands report their own errors; main prints anything else.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)

			if opts.Database == "" {
				path, err := defaultDatabasePath()
				if err != nil {
					return err
				}
				opts.Database = path
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", os.Getenv(EnvDatabase),
		"path to SQLite database (env "+EnvDatabase+", default ~/.codelog/codelog.db)")
	cmd.PersistentFlags().StringVar(&opts.Rules, "rules", os.Getenv(EnvRules),
		"suggestion rules file, .yaml or .cue (env "+EnvRules+")")

	// Add subcommands
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewQuestionCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewChartCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))
	cmd.AddCommand(NewDashboardCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w (set --db or %s)", err, EnvDatabase)
	}
	return filepath.Join(home, ".codelog", "codelog.db"), nil
}
