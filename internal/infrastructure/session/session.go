// Package session provides server-side session management backed by a
// persistent key-value store
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session id has no live record, either
// because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// DefaultLanguage is the language assigned to new sessions.
const DefaultLanguage = "en"

// Session is the server-side record identifying a client across requests.
// A session with UserID zero is anonymous and must not be authorized for
// protected operations.
type Session struct {
	ID       string `json:"id"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Language string `json:"language"`
}

// Authenticated reports whether the session is bound to a user
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// New creates an unsaved session with a fresh opaque identifier
func New() *Session {
	return &Session{
		ID:       uuid.New().String(),
		Language: DefaultLanguage,
	}
}

// Store defines how sessions are stored and retrieved. Every write resets
// the record's time-to-live; implementations must confirm the write before
// returning so callers never report success on unpersisted state.
type Store interface {
	// Create persists a new session.
	Create(ctx context.Context, s *Session) error
	// Get returns the live session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Save persists mutations to an existing session.
	Save(ctx context.Context, s *Session) error
	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
