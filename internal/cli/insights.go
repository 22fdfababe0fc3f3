package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/chart"
	"github.com/roach88/codelog/internal/stats"
	"github.com/roach88/codelog/internal/suggest"
	"github.com/roach88/codelog/internal/tracker"
)

// growthMount is the mount point the growth chart is drawn on.
const growthMount = "growth"

// charts owns the rendered growth chart. Drawing it again disposes the
// previous one.
var charts = chart.NewRenderer(chart.DefaultWidth)

// StatsResult is the JSON payload of the stats command.
type StatsResult struct {
	Platforms []stats.PlatformCount `json:"platforms"`
	Summary   stats.Summary         `json:"summary"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Show solved counts per platform and a practice summary",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				d, err := tr.Dashboard(ctx)
				if err != nil {
					return err
				}
				return f.Render(StatsResult{Platforms: d.Platforms, Summary: d.Summary}, func(w io.Writer) error {
					if err := writePlatforms(w, d.Platforms); err != nil {
						return err
					}
					return writeSummary(w, d.Summary)
				})
			})
		},
	}
}

// NewChartCommand creates the chart command.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show questions solved per day",
		Long: `Show the growth series: questions solved per day, oldest first.

Text output draws a bar per day. JSON output is a Chart.js line chart
configuration that can be passed to new Chart(ctx, config) as is.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				d, err := tr.Dashboard(ctx)
				if err != nil {
					return err
				}
				return f.Render(d.Chart, func(w io.Writer) error {
					_, err := charts.Render(growthMount, w, d.Chart)
					return err
				})
			})
		},
	}
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest what to study next",
		Long: `Suggest what to study next from the topics mentioned in your journal.

The rule table can be replaced with --rules (YAML or CUE), for example:

  default: Focus on consistent problem-solving each day.
  fallback: Keep going!
  rules:
    - keyword: heap
      suggestion: Try priority queue problems.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				d, err := tr.Dashboard(ctx)
				if err != nil {
					return err
				}
				res := suggest.Result{Suggestion: d.Suggestion, Keyword: d.Keyword}
				return f.Render(res, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, res.Suggestion)
					return err
				})
			})
		},
	}
}

func writePlatforms(w io.Writer, counts []stats.PlatformCount) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No questions logged yet.")
		return err
	}
	for _, c := range counts {
		fmt.Fprintf(w, "%s: %d\n", c.Platform, c.Count)
	}
	return nil
}

func writeSummary(w io.Writer, s stats.Summary) error {
	if s.Total == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total solved:   %d\n", s.Total)
	fmt.Fprintf(w, "Active days:    %d\n", s.ActiveDays)
	fmt.Fprintf(w, "Mean per day:   %g\n", s.MeanPerDay)
	fmt.Fprintf(w, "Median per day: %g\n", s.MedianPerDay)
	fmt.Fprintf(w, "Best day:       %s (%d)\n", s.BestDay, s.BestDayCount)
	return nil
}
