package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/codelog/internal/suggest"
)

func TestRulesCheck_Valid(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := newRulesCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/rules.cue"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "✓ testdata/rules.cue: 2 rule(s) valid\n", buf.String())
}

func TestRulesCheck_ValidJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := newRulesCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"../suggest/testdata/rules.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	resp := decodeResponse(t, buf.String())
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"valid": true, "path": "../suggest/testdata/rules.yaml", "rules": float64(2)}, resp.Data)
}

func TestRulesCheck_Invalid(t *testing.T) {
	for _, path := range []string{
		"../suggest/testdata/typo.yaml",
		"../suggest/testdata/typo.cue",
		"testdata/missing.yaml",
	} {
		t.Run(path, func(t *testing.T) {
			buf := &bytes.Buffer{}
			rootOpts := &RootOptions{Format: "json"}
			cmd := newRulesCheckCommand(rootOpts)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{path})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))

			resp := decodeResponse(t, buf.String())
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, ErrCodeRules, resp.Error.Code)
		})
	}
}

func TestRulesShow_Default(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun(t, "rules", "show")

	assert.Contains(t, out, `1. "array" -> Try exploring String or Sliding Window problems next.`)
	assert.Contains(t, out, `4. "dp" -> Great! Maybe now challenge yourself with advanced Graph problems.`)
	assert.Contains(t, out, "default:  "+suggest.DefaultSuggestion+"\n")
	assert.Contains(t, out, "fallback: "+suggest.FallbackSuggestion+"\n")
}

func TestRulesShow_FromFile(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun(t, "--rules", "testdata/rules.cue", "rules", "show")
	assert.Equal(t, ""+
		"1. \"heap\" -> Try priority queue problems.\n"+
		"2. \"bit\" -> Practice bit manipulation tricks.\n"+
		"default:  Pick any problem and start.\n"+
		"fallback: Tag your log with a topic.\n", out)
}
