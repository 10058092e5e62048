// Package services contains application services for the LibShelf client.
// This file defines the session store: the single source of truth for the
// user's bearer token and the only component allowed to touch its
// persistence.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dkarpovs/libshelf/internal/client/repositories/keystore"
	"github.com/dkarpovs/libshelf/internal/dbx"
	"github.com/dkarpovs/libshelf/internal/logging"
)

// ErrPersistence marks a login that failed because the token could not be
// saved durably. Match with errors.Is.
var ErrPersistence = errors.New("failed to save authentication data")

// Keystore keys owned by the session store.
const (
	keyAuthToken  = "auth_token"
	keyTokenSaved = "auth_token_saved_at"
)

// Messages surfaced through LastError.
const (
	msgLoadFailed  = "Failed to load authentication data"
	msgSaveFailed  = "Failed to save authentication data"
	msgClearFailed = "Failed to clear authentication data"
)

// SessionStore owns the process-wide session state. The token in memory and
// the token on disk never diverge past a single operation: Login persists
// first and only then updates memory, Logout clears memory even when the
// persisted clear fails.
//
// All mutations and reads are serialized by an internal mutex, so a stray
// concurrent Login/Logout pair cannot interleave their storage writes.
type SessionStore struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.Mutex
	token   string
	savedAt time.Time
	ready   bool
	loading bool
	lastErr string
}

// NewSessionStore constructs a SessionStore over the given client database.
// Call Initialize once before rendering any authenticated surface.
func NewSessionStore(db *sql.DB, log logging.Logger) *SessionStore {
	return &SessionStore{db: db, log: log}
}

func (s *SessionStore) keystore() keystore.Repository {
	return keystore.NewSQLiteRepository(s.db)
}

// Initialize performs the one-shot startup load of the persisted token.
// A failed or corrupted read is absorbed: it is logged, recorded in
// LastError, and the stored value is cleared so it is never reused. Whatever
// happens, the store ends ready and not loading. Initialize never reports an
// error to its caller.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.lastErr = ""

	repo := s.keystore()

	value, err := repo.Get(ctx, keyAuthToken)
	switch {
	case err != nil:
		s.log.Error(ctx, "failed to load auth token", "error", err)
		s.lastErr = msgLoadFailed
		s.clearPersistedLocked(ctx)
	case len(value) > 0 && !utf8.Valid(value):
		s.log.Error(ctx, "stored auth token is corrupted, clearing it")
		s.lastErr = msgLoadFailed
		s.clearPersistedLocked(ctx)
	case len(value) > 0:
		s.token = string(value)
		if raw, err := repo.Get(ctx, keyTokenSaved); err == nil && len(raw) > 0 {
			if ts, err := time.Parse(time.RFC3339, string(raw)); err == nil {
				s.savedAt = ts
			}
		}
		s.log.Info(ctx, "session restored from local storage")
	}

	s.ready = true
	s.loading = false
}

// Login persists the token and only then updates the in-memory session.
// When persistence fails the memory token is left untouched and the caller
// gets an ErrPersistence-wrapped error; the session never claims an
// authenticated state without durable backing.
func (s *SessionStore) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	savedAt := time.Now().UTC()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := keystore.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyTokenSaved, []byte(savedAt.Format(time.RFC3339)))
	})
	if err != nil {
		s.log.Error(ctx, "failed to save auth token", "error", err)
		s.lastErr = msgSaveFailed
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.token = token
	s.savedAt = savedAt
	s.lastErr = ""
	return nil
}

// Logout clears the persisted token and then the in-memory one. A failed
// persisted clear is recorded in LastError but does not keep the user logged
// in: from the UI's perspective logout always succeeds. This is the deliberate
// mirror image of Login, which must not fake success.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	if ok := s.clearPersistedLocked(ctx); ok {
		s.lastErr = ""
	} else {
		s.lastErr = msgClearFailed
	}

	s.token = ""
	s.savedAt = time.Time{}
}

// Invalidate is the gateway-facing session clear, triggered by a 401/403
// response. It behaves like Logout but leaves LastError alone: the gateway
// already surfaces its own message to the caller.
func (s *SessionStore) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearPersistedLocked(ctx)
	s.token = ""
	s.savedAt = time.Time{}
}

// clearPersistedLocked deletes the stored token best-effort and reports
// whether both deletes succeeded. Callers must hold s.mu.
func (s *SessionStore) clearPersistedLocked(ctx context.Context) bool {
	repo := s.keystore()
	ok := true
	if err := repo.Delete(ctx, keyAuthToken); err != nil {
		s.log.Error(ctx, "failed to clear auth token", "error", err)
		ok = false
	}
	if err := repo.Delete(ctx, keyTokenSaved); err != nil {
		s.log.Error(ctx, "failed to clear auth token timestamp", "error", err)
		ok = false
	}
	return ok
}

// ClearError resets LastError. Pure, no side effects.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// Token returns the current bearer token, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// BearerToken implements the gateway's TokenSource. Each request takes its
// own snapshot at dispatch time; a token change mid-flight does not affect
// requests already sent.
func (s *SessionStore) BearerToken(ctx context.Context) (string, error) {
	return s.Token(), nil
}

// IsAuthenticated reports whether a token is present. Token presence is the
// sole signal of the authenticated state.
func (s *SessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

// IsReady reports whether the startup load has completed. UI must not render
// authenticated or unauthenticated surfaces before this flips to true.
func (s *SessionStore) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// IsLoading reports whether a session operation is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the last recorded operation failure, or "".
func (s *SessionStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SavedAt returns when the current token was stored, or the zero time when
// logged out.
func (s *SessionStore) SavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedAt
}
