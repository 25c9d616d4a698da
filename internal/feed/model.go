// File: internal/feed/model.go

// Package feed implements the activity feed: short posts from signed-in
// users, shown newest first. New signups land here.
package feed

import (
	"time"

	"github.com/wflore19/portfolio-backend/internal/common"
)

// Post is a single feed entry.
type Post struct {
	common.BaseModel
	UserID  int64  `gorm:"column:user_id;not null;index"`
	Message string `gorm:"column:message;type:varchar(255);not null"`
}

// TableName specifies the table name for the Post model.
func (Post) TableName() string {
	return "feed_posts"
}

// PostWithAuthor is a feed entry joined with its author's display fields.
type PostWithAuthor struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostRequest is the payload for publishing a feed post.
type CreatePostRequest struct {
	Message string `json:"message" binding:"required,min=1,max=255"`
}
