package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/tracker"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the current session",
		Long: `Restore the persisted session and show everything the dashboard
displays: welcome, per-platform counts, logged questions, the growth chart
and the study suggestion.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				sess, err := tr.Restore(ctx)
				if err != nil {
					return err
				}
				if sess == nil {
					f.VerboseLog("no persisted session")
				}
				d, err := tr.Dashboard(ctx)
				if err != nil {
					return err
				}
				return f.Render(d, func(w io.Writer) error {
					return writeDashboard(w, d)
				})
			})
		},
	}
}

// writeDashboard prints every dashboard section in display order.
func writeDashboard(w io.Writer, d tracker.Dashboard) error {
	fmt.Fprintln(w, d.Welcome)

	fmt.Fprintln(w, "\nPlatforms")
	if err := writePlatforms(w, d.Platforms); err != nil {
		return err
	}

	if len(d.Questions) > 0 {
		fmt.Fprintln(w, "\nQuestions")
		if err := writeQuestions(w, d.Questions); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	if _, err := charts.Render(growthMount, w, d.Chart); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSuggestion: %s\n", d.Suggestion)
	return nil
}
