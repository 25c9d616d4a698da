// File: internal/shared/core.go
package shared

import (
	"context"
	"time"
)

// User represents a user in the system.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Service is the user directory surface consumed by the authentication flow
// and the protected-route middleware. It is deliberately narrow: lookup by
// email, lookup by id, create, and a single partial update for the avatar.
type Service interface {
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, email, firstName, lastName string) (*User, error)
	UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error
}
