package questions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/codelog/internal/accounts"
	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/session"
	"github.com/roach88/codelog/internal/store"
	"github.com/roach88/codelog/internal/testutil"
)

var alice = session.Session{Username: "alice"}

func newTestLog(t *testing.T) (*EventLog, *testutil.FixedClock) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	accts := accounts.New(st)
	_, err = accts.Register(context.Background(), "alice", "pw", "")
	require.NoError(t, err)

	clk := testutil.NewFixedClockOn("2025-03-14")
	return New(accts, clk), clk
}

func TestAdd(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	ev, err := l.Add(ctx, alice, "leetcode", "arrays", " 1 ")
	require.NoError(t, err)
	assert.Equal(t, record.QuestionEvent{
		Platform: "LeetCode",
		Topic:    "Arrays",
		Number:   "1",
		SolvedOn: "2025-03-14",
	}, ev)

	list, err := l.List(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []record.QuestionEvent{ev}, list)
}

func TestAdd_InsertionOrder(t *testing.T) {
	l, clk := newTestLog(t)
	ctx := context.Background()

	_, err := l.Add(ctx, alice, "Codeforces", "Greedy", "1742A")
	require.NoError(t, err)
	clk.AdvanceDays(-3)
	_, err = l.Add(ctx, alice, "LeetCode", "Graphs", "200")
	require.NoError(t, err)

	list, err := l.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1742A", list[0].Number)
	assert.Equal(t, "200", list[1].Number)
	assert.Equal(t, "2025-03-11", list[1].SolvedOn)
}

func TestAdd_Rejections(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		platform string
		topic    string
		number   string
		want     error
	}{
		{"empty number", "LeetCode", "Arrays", "  ", record.ErrEmptyNumber},
		{"unknown platform", "Nowhere", "Arrays", "1", record.ErrUnknownPlatform},
		{"unknown topic", "LeetCode", "Knitting", "1", record.ErrUnknownTopic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Add(ctx, alice, tt.platform, tt.topic, tt.number)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	list, err := l.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemove(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	for _, n := range []string{"1", "2", "3"} {
		_, err := l.Add(ctx, alice, "LeetCode", "Arrays", n)
		require.NoError(t, err)
	}

	removed, err := l.Remove(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, "2", removed.Number)

	list, err := l.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].Number)
	assert.Equal(t, "3", list[1].Number)
}

func TestRemove_OutOfRange(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	_, err := l.Add(ctx, alice, "LeetCode", "Arrays", "1")
	require.NoError(t, err)

	for _, idx := range []int{-1, 1, 99} {
		_, err := l.Remove(ctx, alice, idx)
		assert.ErrorIs(t, err, record.ErrIndexOutOfRange, "index %d", idx)
	}

	list, err := l.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRemove_EmptyList(t *testing.T) {
	l, _ := newTestLog(t)
	_, err := l.Remove(context.Background(), alice, 0)
	assert.ErrorIs(t, err, record.ErrIndexOutOfRange)
}

func TestMissingAccount(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()
	ghost := session.Session{Username: "ghost"}

	_, err := l.Add(ctx, ghost, "LeetCode", "Arrays", "1")
	assert.ErrorIs(t, err, record.ErrSessionAccountNotFound)

	_, err = l.Remove(ctx, ghost, 0)
	assert.ErrorIs(t, err, record.ErrSessionAccountNotFound)

	_, err = l.List(ctx, ghost)
	assert.ErrorIs(t, err, record.ErrSessionAccountNotFound)
}
