package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/codelog/internal/tracker"
)

// AuthOptions holds flags for the signup and login commands.
type AuthOptions struct {
	*RootOptions
	Username string
	Password string
	Name     string
}

// SignupResult is the JSON payload of the signup command.
type SignupResult struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long: `Create a local account. Signing up does not log you in.

When --password is omitted it is prompted for without echo, or read
from the first line of stdin when stdin is not a terminal.

Examples:
  codelog signup --username alice --name "Alice"
  echo secret | codelog signup --username bob`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "display name shown in the welcome message")

	return cmd
}

func runSignup(opts *AuthOptions, cmd *cobra.Command) error {
	password, err := resolvePassword(cmd, opts.Password)
	if err != nil {
		return fail(newFormatter(opts.RootOptions, cmd), err)
	}

	return withTracker(opts.RootOptions, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
		acc, err := tr.SignUp(ctx, opts.Username, password, opts.Name)
		if err != nil {
			return err
		}
		return f.Render(SignupResult{Username: acc.Username, Name: acc.DisplayName}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Account created. You can log in now.")
			return err
		})
	})
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and show the dashboard",
		Long: `Log in to an account. The session persists until logout, so later
commands act on this account.

Examples:
  codelog login --username alice
  codelog login -u alice -p secret --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

func runLogin(opts *AuthOptions, cmd *cobra.Command) error {
	password, err := resolvePassword(cmd, opts.Password)
	if err != nil {
		return fail(newFormatter(opts.RootOptions, cmd), err)
	}

	return withTracker(opts.RootOptions, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
		_, d, err := tr.Login(ctx, opts.Username, password)
		if err != nil {
			return err
		}
		return f.Render(d, func(w io.Writer) error {
			return writeDashboard(w, d)
		})
	})
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "End the current session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(rootOpts, cmd, func(ctx context.Context, tr *tracker.Tracker, f *OutputFormatter) error {
				if err := tr.Logout(ctx); err != nil {
					return err
				}
				return f.Render(map[string]bool{"logged_out": true}, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, "Logged out.")
					return err
				})
			})
		},
	}
}
