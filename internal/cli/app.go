package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/store"
	"github.com/roach88/codelog/internal/suggest"
	"github.com/roach88/codelog/internal/tracker"
)

// setupLogging configures the default slog logger: text on w, Debug level
// when verbose.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openTracker opens the database and builds the tracker. The returned
// close function must be called when the command is done.
func openTracker(opts *RootOptions) (*tracker.Tracker, func(), error) {
	if dir := filepath.Dir(opts.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, codedError(ExitCommandError, ErrCodeDatabase, "failed to create database directory", err)
		}
	}

	slog.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, nil, codedError(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	closeStore := func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}

	var trOpts []tracker.Option
	if opts.Rules != "" {
		table, err := suggest.LoadTable(opts.Rules)
		if err != nil {
			closeStore()
			return nil, nil, codedError(ExitCommandError, ErrCodeRules, "failed to load rules", err)
		}
		slog.Debug("rules loaded", "path", opts.Rules, "rules", len(table.Rules))
		trOpts = append(trOpts, tracker.WithRules(table))
	}
	if opts.Clock != nil {
		trOpts = append(trOpts, tracker.WithClock(opts.Clock))
	}
	if opts.ActionIDs != nil {
		trOpts = append(trOpts, tracker.WithActionIDs(opts.ActionIDs))
	}

	return tracker.New(st, trOpts...), closeStore, nil
}

// withTracker opens the tracker, runs fn and reports any error through the
// formatter.
func withTracker(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error) error {
	f := newFormatter(opts, cmd)

	tr, closeStore, err := openTracker(opts)
	if err != nil {
		return fail(f, err)
	}
	defer closeStore()

	if err := fn(commandContext(cmd), tr, f); err != nil {
		return fail(f, err)
	}
	return nil
}
