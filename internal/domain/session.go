package domain

import "context"

// Session is the locally cached identity of the registered user.
type Session struct {
	UserID string
	Name   string
}

type SessionStore interface {
	// Load returns nil, nil when no identifier is stored.
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	// Clear removes the identifier and display name, and nothing else.
	Clear(ctx context.Context) error
}
