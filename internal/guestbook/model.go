// File: internal/guestbook/model.go

// Package guestbook implements the signed guestbook: short messages left by
// authenticated visitors, displayed publicly with the author's name and
// avatar.
package guestbook

import (
	"time"

	"github.com/wflore19/portfolio-backend/internal/common"
)

// Message is a single guestbook entry.
type Message struct {
	common.BaseModel
	UserID  int64  `gorm:"column:user_id;not null;index"`
	Message string `gorm:"column:message;type:varchar(255);not null"`
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "book_messages"
}

// MessageWithAuthor is a guestbook entry joined with its author's display
// fields, the shape the public page renders.
type MessageWithAuthor struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMessageRequest is the payload for posting a guestbook entry.
type CreateMessageRequest struct {
	Message string `json:"message" binding:"required,min=1,max=255"`
}
