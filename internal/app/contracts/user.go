package contracts

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}

// RoleGate answers whether a user may invoke AI analysis. Roles are fetched
// fresh from the record store on every call; a fetch failure is an error, never
// an implicit allow.
type RoleGate interface {
	Authorize(ctx context.Context, userID string) error
}
