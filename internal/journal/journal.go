// Package journal records free-text daily log entries for the active
// account. Entries are append only.
package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/codelog/internal/clock"
	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/session"
)

// Accounts is the slice of the account store the journal uses.
type Accounts interface {
	Get(ctx context.Context, username string) (record.Account, error)
	Update(ctx context.Context, username string, fn func(*record.Account) error) (record.Account, error)
}

// Journal appends and reads journal entries.
type Journal struct {
	accounts Accounts
	clock    clock.Clock
}

// New returns a Journal dating entries with clk.
func New(accounts Accounts, clk clock.Clock) *Journal {
	return &Journal{accounts: accounts, clock: clk}
}

// Add appends text, captured today, to the session's account.
// Text that trims to empty fails with ErrMissingField and changes nothing.
func (j *Journal) Add(ctx context.Context, sess session.Session, text string) (record.LogEntry, error) {
	entry, err := record.NewLogEntry(text, clock.DisplayDate(j.clock))
	if err != nil {
		return record.LogEntry{}, err
	}
	_, err = j.accounts.Update(ctx, sess.Username, func(acc *record.Account) error {
		acc.Logs = append(acc.Logs, entry)
		return nil
	})
	if err != nil {
		return record.LogEntry{}, fmt.Errorf("add log entry: %w", err)
	}
	return entry, nil
}

// Entries returns the session account's entries in stored order.
func (j *Journal) Entries(ctx context.Context, sess session.Session) ([]record.LogEntry, error) {
	acc, err := j.accounts.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	return acc.Logs, nil
}

// Corpus joins the entry texts in stored order and lower-cases the result.
// Entries are separated by newlines so a keyword cannot be formed across
// two entries.
func Corpus(logs []record.LogEntry) string {
	texts := make([]string, len(logs))
	for i, l := range logs {
		texts[i] = l.Text
	}
	return strings.ToLower(strings.Join(texts, "\n"))
}
