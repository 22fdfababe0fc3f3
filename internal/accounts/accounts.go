// Package accounts is the account store: a username-keyed mapping persisted
// as one document under a fixed key.
//
// Every mutation is a whole-store read-modify-write. The document is
// re-read inside the store transaction immediately before it is modified and
// written back in full; nothing is cached between calls.
package accounts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/store"
)

// UsersKey is the key the account store document lives under.
const UsersKey = "users"

// KV is the persistence the account store needs. *store.Store implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Update(ctx context.Context, key string, fn store.UpdateFunc) error
}

// Store reads and writes accounts.
type Store struct {
	kv KV
}

// New returns an account store over kv.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// All returns the full account store.
func (s *Store) All(ctx context.Context) (record.Accounts, error) {
	data, _, err := s.kv.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return record.DecodeAccounts(data)
}

// Get returns the account for username, or ErrSessionAccountNotFound.
func (s *Store) Get(ctx context.Context, username string) (record.Account, error) {
	all, err := s.All(ctx)
	if err != nil {
		return record.Account{}, err
	}
	acc, ok := all[username]
	if !ok {
		return record.Account{}, fmt.Errorf("%w: %q", record.ErrSessionAccountNotFound, username)
	}
	return acc, nil
}

// Register creates an account with empty logs and questions.
// Fails with ErrMissingField for an empty username or password and with
// ErrUserExists when the username is taken; neither changes the store.
func (s *Store) Register(ctx context.Context, username, password, displayName string) (record.Account, error) {
	acc, err := record.NewAccount(username, password, displayName)
	if err != nil {
		return record.Account{}, err
	}

	err = s.kv.Update(ctx, UsersKey, func(cur []byte, _ bool) ([]byte, error) {
		all, err := record.DecodeAccounts(cur)
		if err != nil {
			return nil, err
		}
		if _, exists := all[acc.Username]; exists {
			return nil, fmt.Errorf("%w: %q", record.ErrUserExists, acc.Username)
		}
		all[acc.Username] = acc
		return record.EncodeAccounts(all)
	})
	if err != nil {
		return record.Account{}, err
	}

	slog.Debug("account registered", "user", acc.Username)
	return acc, nil
}

// Authenticate returns the account whose username and password both match
// exactly. Any mismatch, including an unknown username, is
// ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (record.Account, error) {
	username = record.NormalizeCredential(strings.TrimSpace(username))
	if username == "" || password == "" {
		return record.Account{}, fmt.Errorf("%w: username and password are required", record.ErrMissingField)
	}

	all, err := s.All(ctx)
	if err != nil {
		return record.Account{}, err
	}
	acc, ok := all[username]
	if !ok || acc.Password != record.NormalizeCredential(password) {
		return record.Account{}, record.ErrInvalidCredentials
	}
	return acc, nil
}

// Update applies fn to the account for username and persists the whole
// store. If fn returns an error nothing is written. The returned account is
// the state that was persisted.
func (s *Store) Update(ctx context.Context, username string, fn func(*record.Account) error) (record.Account, error) {
	var updated record.Account
	err := s.kv.Update(ctx, UsersKey, func(cur []byte, _ bool) ([]byte, error) {
		all, err := record.DecodeAccounts(cur)
		if err != nil {
			return nil, err
		}
		acc, ok := all[username]
		if !ok {
			return nil, fmt.Errorf("%w: %q", record.ErrSessionAccountNotFound, username)
		}
		acc = acc.Clone()
		if err := fn(&acc); err != nil {
			return nil, err
		}
		all[username] = acc
		updated = acc
		return record.EncodeAccounts(all)
	})
	if err != nil {
		return record.Account{}, err
	}
	return updated, nil
}
