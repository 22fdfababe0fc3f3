// Package questions records per-problem solve events for the active
// account. Events are appended and removed by position; there are no
// in-place edits.
package questions

import (
	"context"
	"fmt"

	"github.com/roach88/codelog/internal/clock"
	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/session"
)

// Accounts is the slice of the account store the event log uses.
type Accounts interface {
	Get(ctx context.Context, username string) (record.Account, error)
	Update(ctx context.Context, username string, fn func(*record.Account) error) (record.Account, error)
}

// EventLog appends, removes and lists question events.
type EventLog struct {
	accounts Accounts
	clock    clock.Clock
}

// New returns an EventLog dating events with clk.
func New(accounts Accounts, clk clock.Clock) *EventLog {
	return &EventLog{accounts: accounts, clock: clk}
}

// Add appends an event solved today. An empty number fails with
// ErrEmptyNumber; a platform or topic outside the enumerated sets fails with
// ErrUnknownPlatform or ErrUnknownTopic. Failures change nothing.
func (l *EventLog) Add(ctx context.Context, sess session.Session, platform, topic, number string) (record.QuestionEvent, error) {
	ev, err := record.NewQuestionEvent(platform, topic, number, clock.ISODate(l.clock))
	if err != nil {
		return record.QuestionEvent{}, err
	}
	_, err = l.accounts.Update(ctx, sess.Username, func(acc *record.Account) error {
		acc.Questions = append(acc.Questions, ev)
		return nil
	})
	if err != nil {
		return record.QuestionEvent{}, fmt.Errorf("add question: %w", err)
	}
	return ev, nil
}

// Remove deletes the event at zero-based position index and returns it.
// An index outside [0, len) fails with ErrIndexOutOfRange and changes
// nothing.
func (l *EventLog) Remove(ctx context.Context, sess session.Session, index int) (record.QuestionEvent, error) {
	var removed record.QuestionEvent
	_, err := l.accounts.Update(ctx, sess.Username, func(acc *record.Account) error {
		if index < 0 || index >= len(acc.Questions) {
			return fmt.Errorf("%w: %d (have %d questions)", record.ErrIndexOutOfRange, index, len(acc.Questions))
		}
		removed = acc.Questions[index]
		acc.Questions = append(acc.Questions[:index], acc.Questions[index+1:]...)
		return nil
	})
	if err != nil {
		return record.QuestionEvent{}, fmt.Errorf("remove question: %w", err)
	}
	return removed, nil
}

// List returns the session account's events in insertion order.
func (l *EventLog) List(ctx context.Context, sess session.Session) ([]record.QuestionEvent, error) {
	acc, err := l.accounts.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	return acc.Questions, nil
}
