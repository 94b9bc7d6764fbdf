package usecase

import (
	"context"
	"fmt"

	"github.com/fardannozami/health-coach/internal/domain"
)

// requireSession loads the local identifier; without one every flow but
// registration is unusable.
func requireSession(ctx context.Context, sessions domain.SessionStore) (*domain.Session, error) {
	s, err := sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotRegistered
	}
	return s, nil
}
