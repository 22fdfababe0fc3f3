package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/codelog/internal/testutil"
)

// cliEnv runs commands against one database file, one process invocation
// per run call.
type cliEnv struct {
	db    string
	clock *testutil.FixedClock
	stdin string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvRules, "")
	return &cliEnv{
		db:    filepath.Join(t.TempDir(), "codelog.db"),
		clock: testutil.NewFixedClockOn("2025-03-14"),
	}
}

// run executes args and returns stdout, stderr and the command error.
func (e *cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	opts := &RootOptions{
		Clock:     e.clock,
		ActionIDs: testutil.NewSequentialIDGenerator(""),
	}
	cmd := NewRootCommandWithOptions(opts)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(e.stdin))
	cmd.SetArgs(append([]string{"--db", e.db}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRun is run for commands expected to succeed.
func (e *cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := e.run(t, args...)
	require.NoError(t, err, "codelog %v\nstdout: %s\nstderr: %s", args, out, stderr)
	return out
}

// loginAs signs up and logs in, discarding output.
func (e *cliEnv) loginAs(t *testing.T, username, name string) {
	t.Helper()
	args := []string{"signup", "-u", username, "-p", "secret"}
	if name != "" {
		args = append(args, "--name", name)
	}
	e.mustRun(t, args...)
	e.mustRun(t, "login", "-u", username, "-p", "secret")
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}
