package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/remove_drops_platform.yaml")
	require.NoError(t, err)

	assert.Equal(t, "remove_drops_platform", s.Name)
	assert.Equal(t, "2025-03-14", s.Start)
	require.Len(t, s.Flow, 8)
	assert.Equal(t, StepLogQuestion, s.Flow[2].Invoke)
	assert.Equal(t, 1, s.Flow[2].Args["number"], "unquoted YAML numbers decode as int")
	require.NotNil(t, s.Flow[6].Expect)
	assert.Equal(t, "IndexOutOfRange", s.Flow[6].Expect.Error)

	require.Len(t, s.Assertions, 3)
	assert.Equal(t, AssertPlatformCounts, s.Assertions[0].Type)
	require.Len(t, s.Assertions[0].Platforms, 1)
	assert.Equal(t, "LeetCode", s.Assertions[0].Platforms[0].Platform)
	assert.Equal(t, 2, s.Assertions[0].Platforms[0].Count)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "name: x\ndescription: y\nflows: []\n",
			wantErr: "field flows not found",
		},
		{
			name:    "missing name",
			content: "description: y\nflow: [{invoke: logout, args: {}}]\nassertions: [{type: logged_out}]\n",
			wantErr: "name is required",
		},
		{
			name:    "empty flow",
			content: "name: x\ndescription: y\nflow: []\nassertions: [{type: logged_out}]\n",
			wantErr: "flow list is required",
		},
		{
			name:    "unknown operation",
			content: "name: x\ndescription: y\nflow: [{invoke: teleport, args: {}}]\nassertions: [{type: logged_out}]\n",
			wantErr: `unknown operation "teleport"`,
		},
		{
			name:    "missing args",
			content: "name: x\ndescription: y\nflow: [{invoke: logout}]\nassertions: [{type: logged_out}]\n",
			wantErr: "args is required",
		},
		{
			name:    "unknown error name",
			content: "name: x\ndescription: y\nflow: [{invoke: logout, args: {}, expect: {error: Oops}}]\nassertions: [{type: logged_out}]\n",
			wantErr: `unknown error "Oops"`,
		},
		{
			name:    "bad start date",
			content: "name: x\ndescription: y\nstart: 14/03/2025\nflow: [{invoke: logout, args: {}}]\nassertions: [{type: logged_out}]\n",
			wantErr: "start:",
		},
		{
			name:    "count required",
			content: "name: x\ndescription: y\nflow: [{invoke: logout, args: {}}]\nassertions: [{type: question_count}]\n",
			wantErr: "non-negative count is required",
		},
		{
			name:    "growth length mismatch",
			content: "name: x\ndescription: y\nflow: [{invoke: logout, args: {}}]\nassertions: [{type: growth, labels: [a], data: []}]\n",
			wantErr: "same length",
		},
		{
			name:    "unknown assertion",
			content: "name: x\ndescription: y\nflow: [{invoke: logout, args: {}}]\nassertions: [{type: vibes}]\n",
			wantErr: `unknown assertion type "vibes"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
