// File: internal/user/model.go
package user

import (
	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/shared"
)

// User represents the user model in the database. A row is created once per
// distinct verified email; avatar_url stays empty until the avatar import
// completes, and an empty value is an accepted degraded state.
type User struct {
	common.BaseModel
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName string `gorm:"type:varchar(55);not null"`
	LastName  string `gorm:"type:varchar(55);not null"`
	AvatarURL string `gorm:"type:varchar(255);not null;default:''"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// ToShared converts a User model to the shared representation used outside
// this package.
func ToShared(u *User) *shared.User {
	return &shared.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
