// Package session tracks which account is active. The active username is
// persisted on its own key, separately from the account store, so a later
// process can restore it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/codelog/internal/record"
)

// CurrentUserKey is the key the active username lives under.
const CurrentUserKey = "currentUser"

// Session identifies the active account. It is passed explicitly to every
// session-scoped operation.
type Session struct {
	Username string
}

// KV is the persistence the session needs. *store.Store implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Resolver looks up accounts by username. *accounts.Store implements it.
type Resolver interface {
	Get(ctx context.Context, username string) (record.Account, error)
}

// Manager begins, restores and ends sessions.
type Manager struct {
	kv       KV
	accounts Resolver
}

// NewManager returns a Manager persisting to kv and resolving usernames
// through accounts.
func NewManager(kv KV, accounts Resolver) *Manager {
	return &Manager{kv: kv, accounts: accounts}
}

// Begin persists username as the active session.
func (m *Manager) Begin(ctx context.Context, username string) (Session, error) {
	if err := m.kv.Put(ctx, CurrentUserKey, []byte(username)); err != nil {
		return Session{}, fmt.Errorf("begin session: %w", err)
	}
	return Session{Username: username}, nil
}

// Restore returns the persisted session, or nil when logged out.
//
// A persisted username that no longer resolves to an account is treated as
// logged out: the stale entry is removed and Restore returns nil.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	data, ok, err := m.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}

	username := string(data)
	if _, err := m.accounts.Get(ctx, username); err != nil {
		if !errors.Is(err, record.ErrSessionAccountNotFound) {
			return nil, fmt.Errorf("restore session: %w", err)
		}
		slog.Warn("clearing session for missing account", "user", username)
		if err := m.End(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &Session{Username: username}, nil
}

// Require is Restore for operations that cannot run logged out.
func (m *Manager) Require(ctx context.Context) (Session, error) {
	s, err := m.Restore(ctx)
	if err != nil {
		return Session{}, err
	}
	if s == nil {
		return Session{}, record.ErrNotLoggedIn
	}
	return *s, nil
}

// End clears the persisted session. Ending when logged out is not an error.
func (m *Manager) End(ctx context.Context) error {
	if err := m.kv.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}
