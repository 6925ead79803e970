package session

import "context"

// Flash message keys used across the application.
const (
	FlashSuccess = "success_message"
	FlashError   = "error_message"
)

// Store defines the interface for session persistence.
//
// Flash messages live next to the session record rather than inside it:
// TakeFlash must read and remove a message in one atomic step so that two
// concurrent renders never show the same message twice.
type Store interface {
	// Create persists a new session.
	Create(ctx context.Context, s *Session) error

	// Get retrieves a session by its cookie token.
	// Returns ErrNotFound if the session doesn't exist.
	// Returns ErrExpired if the session has expired.
	Get(ctx context.Context, token string) (*Session, error)

	// Update saves changes to an existing session.
	Update(ctx context.Context, s *Session) error

	// Delete removes the session stored under token.
	Delete(ctx context.Context, token string) error

	// SetFlash stores a one-shot message for the session, replacing any
	// unread message under the same key.
	SetFlash(ctx context.Context, sessionID, key, value string) error

	// TakeFlash returns the message stored under key and removes it.
	// The boolean is false when no message is pending.
	TakeFlash(ctx context.Context, sessionID, key string) (string, bool, error)
}
