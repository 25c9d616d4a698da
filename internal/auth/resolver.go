// File: internal/auth/resolver.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"go.uber.org/zap"
)

// ResolutionMode distinguishes a returning user from a first visit.
type ResolutionMode string

const (
	ModeLogin  ResolutionMode = "LOGIN"
	ModeSignup ResolutionMode = "SIGNUP"
)

// Resolution is the outcome of mapping a provider profile onto the user
// directory.
type Resolution struct {
	Mode ResolutionMode
	User *shared.User
}

// IdentityResolver maps a verified provider profile to a local user account,
// keyed solely on email address. The provider's own subject id is never
// persisted; two providers asserting the same email resolve to one account.
type IdentityResolver struct {
	users  shared.Service
	logger *zap.Logger
}

// NewIdentityResolver creates an identity resolver.
func NewIdentityResolver(users shared.Service, logger *zap.Logger) *IdentityResolver {
	return &IdentityResolver{
		users:  users,
		logger: logger.Named("IdentityResolver"),
	}
}

// Resolve looks the profile's email up in the directory, creating the account
// on first contact. A uniqueness conflict during create means a concurrent
// callback for the same email won the insert; that request re-reads and
// resolves as a login rather than failing.
func (r *IdentityResolver) Resolve(ctx context.Context, profile *RemoteProfile) (*Resolution, error) {
	existing, err := r.users.GetUserByEmail(ctx, profile.Email)
	if err == nil {
		return &Resolution{Mode: ModeLogin, User: existing}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("auth: looking up %q: %w", profile.Email, err)
	}

	created, err := r.users.CreateUser(ctx, profile.Email, profile.GivenName, profile.FamilyName)
	if err == nil {
		r.logger.Info("Provisioned account from provider profile",
			zap.Int64("userID", created.ID), zap.String("email", created.Email))
		return &Resolution{Mode: ModeSignup, User: created}, nil
	}

	if errors.Is(err, common.ErrConflict) {
		winner, lookupErr := r.users.GetUserByEmail(ctx, profile.Email)
		if lookupErr != nil {
			return nil, fmt.Errorf("auth: re-reading %q after conflict: %w", profile.Email, lookupErr)
		}
		r.logger.Info("Concurrent signup detected, resolving as login",
			zap.Int64("userID", winner.ID), zap.String("email", winner.Email))
		return &Resolution{Mode: ModeLogin, User: winner}, nil
	}

	return nil, fmt.Errorf("auth: creating account for %q: %w", profile.Email, err)
}
