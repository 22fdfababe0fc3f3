package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/tracker"
)

// QuestionOptions holds flags for question add.
type QuestionOptions struct {
	*RootOptions
	Platform string
	Topic    string
}

// QuestionResult is the JSON payload of question add and question rm.
type QuestionResult struct {
	Question  record.QuestionEvent `json:"question"`
	Dashboard tracker.Dashboard    `json:"dashboard"`
}

// NewQuestionCommand creates the question command group.
func NewQuestionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "question",
		Aliases: []string{"q"},
		Short:   "Log, remove and list solved questions",
	}
	cmd.AddCommand(newQuestionAddCommand(rootOpts))
	cmd.AddCommand(newQuestionRemoveCommand(rootOpts))
	cmd.AddCommand(newQuestionListCommand(rootOpts))
	return cmd
}

func newQuestionAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QuestionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <number>",
		Short: "Log a solved question for today",
		Long: fmt.Sprintf(`Log a solved question dated today. Platform and topic are matched
case-insensitively against the known sets.

Platforms: %s
Topics:    %s

Example:
  codelog question add --platform leetcode --topic arrays 1`,
			strings.Join(record.Platforms, ", "),
			strings.Join(record.Topics, ", ")),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				ev, d, err := tr.LogQuestion(ctx, opts.Platform, opts.Topic, args[0])
				if err != nil {
					return err
				}
				return f.Render(QuestionResult{Question: ev, Dashboard: d}, func(w io.Writer) error {
					fmt.Fprintf(w, "Logged %s #%s (%s) on %s\n", ev.Platform, ev.Number, ev.Topic, ev.SolvedOn)
					return writePlatforms(w, d.Platforms)
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.Platform, "platform", "", "platform the question is on (required)")
	_ = cmd.MarkFlagRequired("platform")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "topic of the question (required)")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newQuestionRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove a question by its position in 'question list'",
		Long: `Remove the question at a zero-based position, as shown in the first
column of 'codelog question list'.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fail(newFormatter(rootOpts, cmd),
					codedError(ExitFailure, ErrCodeInvalidInput, fmt.Sprintf("invalid index %q", args[0]), err))
			}
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				ev, d, err := tr.RemoveQuestion(ctx, index)
				if err != nil {
					return err
				}
				return f.Render(QuestionResult{Question: ev, Dashboard: d}, func(w io.Writer) error {
					fmt.Fprintf(w, "Removed %s #%s (%s) from %s\n", ev.Platform, ev.Number, ev.Topic, ev.SolvedOn)
					return writePlatforms(w, d.Platforms)
				})
			})
		},
	}
}

func newQuestionListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Aliases:       []string{"ls"},
		Short:         "List logged questions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				qs, err := tr.Questions(ctx)
				if err != nil {
					return err
				}
				return f.Render(qs, func(w io.Writer) error {
					return writeQuestions(w, qs)
				})
			})
		},
	}
}

// writeQuestions prints one row per question, prefixed by its position.
func writeQuestions(w io.Writer, qs []record.QuestionEvent) error {
	if len(qs) == 0 {
		_, err := fmt.Fprintln(w, "No questions logged yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLATFORM\tTOPIC\tNUMBER\tDATE")
	for i, q := range qs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, q.Platform, q.Topic, q.Number, q.SolvedOn)
	}
	return tw.Flush()
}
