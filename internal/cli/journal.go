package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/tracker"
)

// SaveLogResult is the JSON payload of log add.
type SaveLogResult struct {
	Entry      record.LogEntry `json:"entry"`
	Suggestion string          `json:"suggestion"`
}

// NewLogCommand creates the log command group.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Write and read the daily practice journal",
	}
	cmd.AddCommand(newLogAddCommand(rootOpts))
	cmd.AddCommand(newLogListCommand(rootOpts))
	return cmd
}

func newLogAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Save a journal entry for today",
		Long: `Save a free-text journal entry dated today. The words are joined
with single spaces. Mentioning topics such as arrays, linked lists, graphs
or dp tailors the study suggestion.

Example:
  codelog log add "two pointer array problems, then some graph BFS"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				entry, suggestion, err := tr.SaveLog(ctx, text)
				if err != nil {
					return err
				}
				return f.Render(SaveLogResult{Entry: entry, Suggestion: suggestion}, func(w io.Writer) error {
					fmt.Fprintln(w, "Saved today's log!")
					fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
					return nil
				})
			})
		},
	}
}

func newLogListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List journal entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				logs, err := tr.Logs(ctx)
				if err != nil {
					return err
				}
				return f.Render(logs, func(w io.Writer) error {
					if len(logs) == 0 {
						fmt.Fprintln(w, "No logs yet.")
						return nil
					}
					for _, l := range logs {
						fmt.Fprintf(w, "%s  %s\n", l.CapturedOn, l.Text)
					}
					return nil
				})
			})
		},
	}
}
