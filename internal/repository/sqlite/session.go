package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/citasmedicas/booking-api/internal/repository"
)

const (
	sessionKeyUserID   = "current_user_id"
	sessionKeyLoggedIn = "logged_in"
)

// sessionStore persists the single device-wide session in the session_state
// key-value table. Writes are serialized so a read after Clear never observes
// the previous logged-in id.
type sessionStore struct {
	db *sqlx.DB
	mu sync.Mutex
}

func NewSessionStore(db *sqlx.DB) repository.SessionStore {
	return &sessionStore{db: db}
}

func (s *sessionStore) SetLoggedIn(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin session write: %w", err)
	}
	defer tx.Rollback()

	if err := setValue(ctx, tx, sessionKeyUserID, userID); err != nil {
		return err
	}
	if err := setValue(ctx, tx, sessionKeyLoggedIn, "true"); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin session write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, sessionKeyUserID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := setValue(ctx, tx, sessionKeyLoggedIn, "false"); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (s *sessionStore) CurrentUserID(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loggedIn, err := getValue(ctx, s.db, sessionKeyLoggedIn)
	if err != nil {
		return "", false, err
	}
	if loggedIn != "true" {
		return "", false, nil
	}

	userID, err := getValue(ctx, s.db, sessionKeyUserID)
	if err != nil {
		return "", false, err
	}
	if userID == "" {
		return "", false, nil
	}
	return userID, true, nil
}

func setValue(ctx context.Context, tx *sqlx.Tx, key, value string) error {
	query := `INSERT OR REPLACE INTO session_state (key, value) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	return nil
}

func getValue(ctx context.Context, db *sqlx.DB, key string) (string, error) {
	var value string
	err := db.GetContext(ctx, &value, `SELECT value FROM session_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return value, nil
}
