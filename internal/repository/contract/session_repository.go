package contract

import (
	"context"

	"mm-voicenote-be/internal/entity"
)

type SessionRepository interface {
	// GetCurrentUser returns nil (no error) when nobody is logged in.
	GetCurrentUser(ctx context.Context) (*entity.User, error)
	SetCurrentUser(ctx context.Context, user *entity.User) error
	// ClearCurrentUser is idempotent.
	ClearCurrentUser(ctx context.Context) error
}
