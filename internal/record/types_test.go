package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	acc, err := NewAccount("  alice ", "secret", " Alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "secret", acc.Password)
	assert.Equal(t, "Alice", acc.DisplayName)
	assert.Empty(t, acc.Logs)
	assert.NotNil(t, acc.Logs)
	assert.Empty(t, acc.Questions)
	assert.NotNil(t, acc.Questions)
}

func TestNewAccount_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"blank username", "   ", "pw"},
		{"empty password", "alice", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccount(tt.username, tt.password, "")
			assert.True(t, errors.Is(err, ErrMissingField), "got %v", err)
		})
	}
}

func TestNewAccount_PasswordKeptAsTyped(t *testing.T) {
	acc, err := NewAccount("alice", "  spaced  ", "")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", acc.Password)
}

func TestAccountName(t *testing.T) {
	assert.Equal(t, "Alice", Account{Username: "alice", DisplayName: "Alice"}.Name())
	assert.Equal(t, "alice", Account{Username: "alice"}.Name())
}

func TestAccountClone_NoAliasing(t *testing.T) {
	acc := Account{
		Username:  "alice",
		Logs:      []LogEntry{{Text: "a", CapturedOn: "1/1/2025"}},
		Questions: []QuestionEvent{{Platform: "LeetCode", Topic: "Arrays", Number: "1", SolvedOn: "2025-01-01"}},
	}
	c := acc.Clone()
	c.Logs[0].Text = "changed"
	c.Questions = c.Questions[:0]

	assert.Equal(t, "a", acc.Logs[0].Text)
	assert.Len(t, acc.Questions, 1)
}

func TestNewLogEntry(t *testing.T) {
	entry, err := NewLogEntry("  solved two arrays  ", "3/14/2025")
	require.NoError(t, err)
	assert.Equal(t, "solved two arrays", entry.Text)
	assert.Equal(t, "3/14/2025", entry.CapturedOn)

	_, err = NewLogEntry(" \n\t ", "3/14/2025")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNewQuestionEvent(t *testing.T) {
	ev, err := NewQuestionEvent("leetcode", "dynamic programming", " 70 ", "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, QuestionEvent{
		Platform: "LeetCode",
		Topic:    "Dynamic Programming",
		Number:   "70",
		SolvedOn: "2025-03-14",
	}, ev)
}

func TestNewQuestionEvent_NonNumericNumber(t *testing.T) {
	ev, err := NewQuestionEvent("Codeforces", "Greedy", "1742A", "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "1742A", ev.Number)
}

func TestNewQuestionEvent_Errors(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		topic    string
		number   string
		date     string
		want     error
	}{
		{"empty number", "LeetCode", "Arrays", "   ", "2025-03-14", ErrEmptyNumber},
		{"unknown platform", "Kattis", "Arrays", "1", "2025-03-14", ErrUnknownPlatform},
		{"unknown topic", "LeetCode", "Poetry", "1", "2025-03-14", ErrUnknownTopic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestionEvent(tt.platform, tt.topic, tt.number, tt.date)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewQuestionEvent_BadDate(t *testing.T) {
	_, err := NewQuestionEvent("LeetCode", "Arrays", "1", "14/03/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid solved date")
}

func TestParsePlatformAndTopic(t *testing.T) {
	p, err := ParsePlatform(" geeksforgeeks ")
	require.NoError(t, err)
	assert.Equal(t, "GeeksforGeeks", p)

	topic, err := ParseTopic("LINKED LIST")
	require.NoError(t, err)
	assert.Equal(t, "Linked List", topic)
}

func TestNormalizeCredential(t *testing.T) {
	assert.Equal(t, "\u00e9", NormalizeCredential("e\u0301"))
}
