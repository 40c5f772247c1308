package users

import (
	"context"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type roleGate struct {
	userRepository contracts.UserRepository
	storeTimeout   time.Duration
	log            *zap.Logger
}

func NewRoleGate(userRepository contracts.UserRepository, storeTimeout time.Duration, log *zap.Logger) contracts.RoleGate {
	return &roleGate{
		userRepository: userRepository,
		storeTimeout:   storeTimeout,
		log:            log,
	}
}

// Authorize fetches the caller's roles fresh from the record store and passes
// only holders of a privileged role. A fetch failure is an authorization
// failure, never an implicit allow.
func (g *roleGate) Authorize(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.storeTimeout)
	defer cancel()

	roles, err := g.userRepository.GetUserRoles(ctx, userID)
	if err != nil {
		g.log.Error("roleGate.Authorize role fetch failed",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return exceptions.ErrRoleFetchFailed(err)
	}

	for _, role := range roles {
		if role == constvars.CareTapRoleClinician || role == constvars.CareTapRoleAdmin {
			return nil
		}
	}
	return exceptions.ErrInsufficientPermission(nil)
}
