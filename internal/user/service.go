// File: internal/user/service.go
package user

import (
	"context"

	"github.com/wflore19/portfolio-backend/internal/shared"

	"go.uber.org/zap"
)

// ServiceImplementation implements the shared.Service interface.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ shared.Service = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("UserService"),
	}
}

// GetUserByID looks up a user by their integer identity.
func (s *ServiceImplementation) GetUserByID(ctx context.Context, id int64) (*shared.User, error) {
	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShared(dbUser), nil
}

// GetUserByEmail looks up a user by their unique email.
func (s *ServiceImplementation) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return ToShared(dbUser), nil
}

// CreateUser inserts a new user row. The avatar is left empty; it is attached
// later, once, by the avatar import.
func (s *ServiceImplementation) CreateUser(ctx context.Context, email, firstName, lastName string) (*shared.User, error) {
	dbUser := &User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.repo.Create(ctx, dbUser); err != nil {
		return nil, err
	}
	s.logger.Info("Created new user",
		zap.Int64("userID", dbUser.ID),
		zap.String("email", dbUser.Email),
	)
	return ToShared(dbUser), nil
}

// UpdateAvatarURL patches the avatar location on an existing user.
func (s *ServiceImplementation) UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error {
	return s.repo.UpdateAvatarURL(ctx, id, avatarURL)
}
