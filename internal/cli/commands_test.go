package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/codelog/internal/suggest"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestSignupThenLogin(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun(t, "signup", "-u", "alice", "-p", "secret", "--name", "Alice")
	assert.Equal(t, "Account created. You can log in now.\n", out)

	// Signing up does not start a session.
	out, _, err := env.run(t, "dashboard")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E104]: Not logged in. Run 'codelog login' first.\n", out)

	out = env.mustRun(t, "login", "-u", "alice", "-p", "secret")
	assert.Contains(t, out, "Welcome, Alice!\n")
	assert.Contains(t, out, "Suggestion: "+suggest.DefaultSuggestion)
}

func TestSignup_Duplicate(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "signup", "-u", "alice", "-p", "secret")

	out, _, err := env.run(t, "signup", "-u", "alice", "-p", "other")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E102]: User already exists\n", out)

	env.mustRun(t, "login", "-u", "alice", "-p", "secret")
}

func TestSignup_PasswordFromStdin(t *testing.T) {
	env := newCLIEnv(t)
	env.stdin = "piped secret\n"
	env.mustRun(t, "signup", "-u", "bob")

	env.stdin = ""
	out := env.mustRun(t, "login", "-u", "bob", "-p", "piped secret")
	assert.Contains(t, out, "Welcome, bob!")
}

func TestSignup_EmptyPassword(t *testing.T) {
	env := newCLIEnv(t)
	out, _, err := env.run(t, "signup", "-u", "bob")
	require.Error(t, err)
	assert.Equal(t, "Error [E101]: missing field: password\n", out)
}

func TestLogin_InvalidCredentialsJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "signup", "-u", "alice", "-p", "secret")

	for _, args := range [][]string{
		{"login", "-u", "alice", "-p", "wrong"},
		{"login", "-u", "mallory", "-p", "secret"},
	} {
		out, _, err := env.run(t, append([]string{"--format", "json"}, args...)...)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))

		resp := decodeResponse(t, out)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, ErrCodeInvalidCredentials, resp.Error.Code)
		assert.Equal(t, "Invalid credentials", resp.Error.Message)
	}
}

func TestLogout(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	assert.Equal(t, "Logged out.\n", env.mustRun(t, "logout"))
	assert.Equal(t, "Logged out.\n", env.mustRun(t, "logout"))

	_, _, err := env.run(t, "question", "list")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLogAddAndList(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	assert.Equal(t, "No logs yet.\n", env.mustRun(t, "log", "list"))

	out := env.mustRun(t, "log", "add", "reversed", "a", "linked", "list")
	assert.Equal(t, "Saved today's log!\nSuggestion: How about tackling Stack and Queue based problems now?\n", out)

	env.clock.AdvanceDays(1)
	env.mustRun(t, "log", "add", "rest day")

	assert.Equal(t, "3/14/2025  reversed a linked list\n3/15/2025  rest day\n", env.mustRun(t, "log", "list"))
}

func TestLogAdd_Blank(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	out, _, err := env.run(t, "log", "add", "   ")
	require.Error(t, err)
	assert.Contains(t, out, "Error [E101]")
	assert.Equal(t, "No logs yet.\n", env.mustRun(t, "log", "list"))
}

func TestQuestionFlow(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	out := env.mustRun(t, "question", "add", "--platform", "leetcode", "--topic", "arrays", "1")
	assert.Equal(t, "Logged LeetCode #1 (Arrays) on 2025-03-14\nLeetCode: 1\n", out)
	env.mustRun(t, "question", "add", "--platform", "AtCoder", "--topic", "Math", "abc100_a")

	out = env.mustRun(t, "question", "list")
	assert.Equal(t, ""+
		"#  PLATFORM  TOPIC   NUMBER    DATE\n"+
		"0  LeetCode  Arrays  1         2025-03-14\n"+
		"1  AtCoder   Math    abc100_a  2025-03-14\n", out)

	out = env.mustRun(t, "question", "rm", "1")
	assert.Equal(t, "Removed AtCoder #abc100_a (Math) from 2025-03-14\nLeetCode: 1\n", out)
}

func TestQuestion_Errors(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")
	env.mustRun(t, "question", "add", "--platform", "LeetCode", "--topic", "Arrays", "1")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"empty number", []string{"question", "add", "--platform", "LeetCode", "--topic", "Arrays", " "}, ErrCodeEmptyNumber},
		{"unknown platform", []string{"question", "add", "--platform", "Kattis", "--topic", "Arrays", "1"}, ErrCodeUnknownPlatform},
		{"unknown topic", []string{"question", "add", "--platform", "LeetCode", "--topic", "Origami", "1"}, ErrCodeUnknownTopic},
		{"index too large", []string{"question", "rm", "5"}, ErrCodeIndexOutOfRange},
		{"negative index", []string{"question", "rm", "--", "-1"}, ErrCodeIndexOutOfRange},
		{"non-integer index", []string{"question", "rm", "first"}, ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := env.run(t, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			resp := decodeResponse(t, out)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}

	out := env.mustRun(t, "question", "list")
	assert.Contains(t, out, "0  LeetCode")
	assert.NotContains(t, out, "\n1  ")
}

func TestStats(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	assert.Equal(t, "No questions logged yet.\n", env.mustRun(t, "stats"))

	env.mustRun(t, "question", "add", "--platform", "LeetCode", "--topic", "Arrays", "1")
	env.mustRun(t, "question", "add", "--platform", "LeetCode", "--topic", "Arrays", "2")
	env.clock.AdvanceDays(1)
	env.mustRun(t, "question", "add", "--platform", "CodeChef", "--topic", "Greedy", "G1")

	assert.Equal(t, ""+
		"LeetCode: 2\n"+
		"CodeChef: 1\n"+
		"\n"+
		"Total solved:   3\n"+
		"Active days:    2\n"+
		"Mean per day:   1.5\n"+
		"Median per day: 1.5\n"+
		"Best day:       2025-03-14 (2)\n", env.mustRun(t, "stats"))
}

func TestChartJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")
	env.mustRun(t, "question", "add", "--platform", "LeetCode", "--topic", "Arrays", "1")

	out := env.mustRun(t, "--format", "json", "chart")
	assert.JSONEq(t, `{"status":"ok","data":{"type":"line","data":{"labels":["2025-03-14"],"datasets":[{"label":"Questions Solved","data":[1],"borderColor":"#4CAF50","fill":false}]}}}`, out)
}

func TestChart_ReplacesPreviousChart(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")
	env.mustRun(t, "chart")
	first, ok := charts.Active(growthMount)
	require.True(t, ok)

	env.mustRun(t, "chart")
	second, ok := charts.Active(growthMount)
	require.True(t, ok)

	assert.True(t, first.Destroyed())
	assert.False(t, second.Destroyed())
}

func TestSuggest(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")

	assert.Equal(t, suggest.DefaultSuggestion+"\n", env.mustRun(t, "suggest"))

	env.mustRun(t, "log", "add", "some dp and some graph work")
	out := env.mustRun(t, "--format", "json", "suggest")
	assert.JSONEq(t, `{"status":"ok","data":{"suggestion":"You might want to learn Dynamic Programming or Trees next.","keyword":"graph"}}`, out)
}

func TestSuggest_CustomRules(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")
	env.mustRun(t, "log", "add", "a tree problem")

	rules := "../suggest/testdata/rules.yaml"
	assert.Equal(t, "Try graph traversal next.\n", env.mustRun(t, "--rules", rules, "suggest"))

	out, _, err := env.run(t, "--rules", "../suggest/testdata/typo.yaml", "suggest")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]: failed to load rules")
}

func TestDashboard_Golden(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "Alice")
	env.mustRun(t, "log", "add", "arrays and graphs today")
	env.mustRun(t, "question", "add", "--platform", "leetcode", "--topic", "arrays", "1")
	env.mustRun(t, "question", "add", "--platform", "codeforces", "--topic", "graphs", "4A")
	env.clock.AdvanceDays(1)
	env.mustRun(t, "question", "add", "--platform", "LeetCode", "--topic", "Trees", "226")

	out := env.mustRun(t, "dashboard")
	newGoldie(t).Assert(t, "dashboard", []byte(out))
}

func TestDashboard_RestoresAcrossInvocations(t *testing.T) {
	env := newCLIEnv(t)
	env.loginAs(t, "alice", "")
	env.mustRun(t, "question", "add", "--platform", "HackerRank", "--topic", "Stack", "balanced-brackets")

	first := env.mustRun(t, "--format", "json", "dashboard")
	second := env.mustRun(t, "--format", "json", "dashboard")
	assert.JSONEq(t, first, second)

	resp := decodeResponse(t, first)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Welcome, alice!", data["welcome"])
	assert.Equal(t, []any{map[string]any{"platform": "HackerRank", "count": float64(1)}}, data["platforms"])
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "signup", "-u", "alice", "-p", "secret")

	out, stderr, err := env.run(t, "--verbose", "--format", "json", "login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)
	decodeResponse(t, out)
	assert.Contains(t, stderr, "action_id=test-action-")
	assert.Contains(t, stderr, "session started")
}
