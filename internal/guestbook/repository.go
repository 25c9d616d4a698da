// File: internal/guestbook/repository.go
package guestbook

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines persistence for guestbook messages.
type Repository interface {
	Create(ctx context.Context, message *Message) error
	ListWithAuthors(ctx context.Context, offset, limit int) ([]MessageWithAuthor, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed guestbook repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, message *Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("creating guestbook message: %w", err)
	}
	return nil
}

func (r *gormRepository) ListWithAuthors(ctx context.Context, offset, limit int) ([]MessageWithAuthor, error) {
	var rows []MessageWithAuthor
	err := r.db.WithContext(ctx).
		Table("book_messages").
		Select("book_messages.id, book_messages.user_id, book_messages.message, book_messages.created_at, users.first_name, users.last_name, users.avatar_url").
		Joins("JOIN users ON users.id = book_messages.user_id").
		Order("book_messages.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing guestbook messages: %w", err)
	}
	return rows, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Message{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting guestbook messages: %w", err)
	}
	return total, nil
}
