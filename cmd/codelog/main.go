// Command codelog tracks daily coding practice from the terminal.
//
// Usage:
//
//	codelog signup --username U [--name N]   Create an account
//	codelog login --username U               Start a session
//	codelog log add <text...>                Save today's journal entry
//	codelog question add --platform P --topic T <number>
//	codelog dashboard                        Show counts, chart and suggestion
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/codelog/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors have already been reported by the command.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
