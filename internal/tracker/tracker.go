// Package tracker wires the account store, session, journal, question log
// and suggestion table together. Every operation follows the same control
// flow: validate, mutate, persist, then recompute whatever depends on the
// mutated state. Derived views are never cached.
package tracker

import (
	"context"
	"log/slog"

	"github.com/roach88/codelog/internal/accounts"
	"github.com/roach88/codelog/internal/chart"
	"github.com/roach88/codelog/internal/clock"
	"github.com/roach88/codelog/internal/journal"
	"github.com/roach88/codelog/internal/questions"
	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/session"
	"github.com/roach88/codelog/internal/stats"
	"github.com/roach88/codelog/internal/store"
	"github.com/roach88/codelog/internal/suggest"
)

// KV is the persistence the tracker needs. *store.Store implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn store.UpdateFunc) error
}

// Tracker is the application core.
type Tracker struct {
	accounts  *accounts.Store
	sessions  *session.Manager
	journal   *journal.Journal
	questions *questions.EventLog
	rules     suggest.Table
	clock     clock.Clock
	ids       ActionIDGenerator
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithRules replaces the built-in suggestion table.
func WithRules(t suggest.Table) Option {
	return func(tr *Tracker) {
		tr.rules = t
	}
}

// WithClock sets the clock used to date entries and events.
func WithClock(c clock.Clock) Option {
	return func(tr *Tracker) {
		tr.clock = c
	}
}

// WithActionIDs sets the action ID generator.
func WithActionIDs(g ActionIDGenerator) Option {
	return func(tr *Tracker) {
		tr.ids = g
	}
}

// New returns a Tracker persisting to kv.
func New(kv KV, opts ...Option) *Tracker {
	t := &Tracker{
		rules: suggest.DefaultTable(),
		clock: clock.System{},
		ids:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.accounts = accounts.New(kv)
	t.sessions = session.NewManager(kv, t.accounts)
	t.journal = journal.New(t.accounts, t.clock)
	t.questions = questions.New(t.accounts, t.clock)
	return t
}

// Rules returns the suggestion table in use.
func (t *Tracker) Rules() suggest.Table {
	return t.rules
}

func (t *Tracker) begin(op string, attrs ...any) *slog.Logger {
	logger := slog.With(append([]any{"action_id", t.ids.Generate(), "op", op}, attrs...)...)
	logger.Debug("operation started")
	return logger
}

// SignUp registers a new account. It does not start a session; the caller
// logs in separately.
func (t *Tracker) SignUp(ctx context.Context, username, password, displayName string) (record.Account, error) {
	log := t.begin("signup", "user", username)

	acc, err := t.accounts.Register(ctx, username, password, displayName)
	if err != nil {
		log.Debug("signup rejected", "error", err)
		return record.Account{}, err
	}
	log.Info("account created")
	return acc, nil
}

// Login authenticates and persists the session, then loads the dashboard.
func (t *Tracker) Login(ctx context.Context, username, password string) (session.Session, Dashboard, error) {
	log := t.begin("login", "user", username)

	acc, err := t.accounts.Authenticate(ctx, username, password)
	if err != nil {
		log.Debug("login rejected", "error", err)
		return session.Session{}, Dashboard{}, err
	}
	sess, err := t.sessions.Begin(ctx, acc.Username)
	if err != nil {
		return session.Session{}, Dashboard{}, err
	}
	log.Info("session started")
	return sess, t.dashboard(acc), nil
}

// Restore re-enters the persisted session, if any. A nil session means
// logged out.
func (t *Tracker) Restore(ctx context.Context) (*session.Session, error) {
	log := t.begin("restore")

	sess, err := t.sessions.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		log.Debug("no session")
		return nil, nil
	}
	log.Debug("session restored", "user", sess.Username)
	return sess, nil
}

// Logout ends the persisted session. Logging out twice is not an error.
func (t *Tracker) Logout(ctx context.Context) error {
	log := t.begin("logout")

	if err := t.sessions.End(ctx); err != nil {
		return err
	}
	log.Info("session ended")
	return nil
}

// SaveLog appends a journal entry for the active session and returns the
// recomputed suggestion.
func (t *Tracker) SaveLog(ctx context.Context, text string) (record.LogEntry, string, error) {
	log := t.begin("save_log")

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return record.LogEntry{}, "", err
	}
	entry, err := t.journal.Add(ctx, sess, text)
	if err != nil {
		log.Debug("log rejected", "user", sess.Username, "error", err)
		return record.LogEntry{}, "", err
	}
	log.Info("log saved", "user", sess.Username, "date", entry.CapturedOn)

	acc, err := t.accounts.Get(ctx, sess.Username)
	if err != nil {
		return record.LogEntry{}, "", err
	}
	return entry, t.rules.Suggest(journal.Corpus(acc.Logs)), nil
}

// Logs returns the active session's journal entries.
func (t *Tracker) Logs(ctx context.Context) ([]record.LogEntry, error) {
	t.begin("list_logs")

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return nil, err
	}
	return t.journal.Entries(ctx, sess)
}

// LogQuestion records a solved question for the active session and returns
// the recomputed dashboard.
func (t *Tracker) LogQuestion(ctx context.Context, platform, topic, number string) (record.QuestionEvent, Dashboard, error) {
	log := t.begin("log_question")

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return record.QuestionEvent{}, Dashboard{}, err
	}
	ev, err := t.questions.Add(ctx, sess, platform, topic, number)
	if err != nil {
		log.Debug("question rejected", "user", sess.Username, "error", err)
		return record.QuestionEvent{}, Dashboard{}, err
	}
	log.Info("question logged",
		"user", sess.Username,
		"platform", ev.Platform,
		"topic", ev.Topic,
		"number", ev.Number)

	d, err := t.load(ctx, sess)
	if err != nil {
		return record.QuestionEvent{}, Dashboard{}, err
	}
	return ev, d, nil
}

// RemoveQuestion deletes the question at zero-based position index and
// returns the recomputed dashboard.
func (t *Tracker) RemoveQuestion(ctx context.Context, index int) (record.QuestionEvent, Dashboard, error) {
	log := t.begin("remove_question", "index", index)

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return record.QuestionEvent{}, Dashboard{}, err
	}
	ev, err := t.questions.Remove(ctx, sess, index)
	if err != nil {
		log.Debug("remove rejected", "user", sess.Username, "error", err)
		return record.QuestionEvent{}, Dashboard{}, err
	}
	log.Info("question removed", "user", sess.Username, "platform", ev.Platform, "number", ev.Number)

	d, err := t.load(ctx, sess)
	if err != nil {
		return record.QuestionEvent{}, Dashboard{}, err
	}
	return ev, d, nil
}

// Questions returns the active session's question events in insertion
// order.
func (t *Tracker) Questions(ctx context.Context) ([]record.QuestionEvent, error) {
	t.begin("list_questions")

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return nil, err
	}
	return t.questions.List(ctx, sess)
}

// Dashboard loads every derived view for the active session.
func (t *Tracker) Dashboard(ctx context.Context) (Dashboard, error) {
	log := t.begin("dashboard")

	sess, err := t.sessions.Require(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d, err := t.load(ctx, sess)
	if err != nil {
		return Dashboard{}, err
	}
	log.Debug("dashboard loaded", "user", sess.Username, "questions", len(d.Questions))
	return d, nil
}

func (t *Tracker) load(ctx context.Context, sess session.Session) (Dashboard, error) {
	acc, err := t.accounts.Get(ctx, sess.Username)
	if err != nil {
		return Dashboard{}, err
	}
	return t.dashboard(acc), nil
}

// dashboard recomputes every view from scratch.
func (t *Tracker) dashboard(acc record.Account) Dashboard {
	growth := stats.Growth(acc.Questions)
	result := t.rules.Evaluate(journal.Corpus(acc.Logs))

	questions := acc.Questions
	if questions == nil {
		questions = []record.QuestionEvent{}
	}
	return Dashboard{
		User:       acc.Username,
		Welcome:    "Welcome, " + acc.Name() + "!",
		Platforms:  stats.PlatformCounts(acc.Questions),
		Questions:  questions,
		Growth:     growth,
		Chart:      chart.FromSeries(growth),
		Summary:    stats.Summarize(acc.Questions),
		Suggestion: result.Suggestion,
		Keyword:    result.Keyword,
	}
}
