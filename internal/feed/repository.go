// File: internal/feed/repository.go
package feed

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines persistence for feed posts.
type Repository interface {
	Create(ctx context.Context, post *Post) error
	ListWithAuthors(ctx context.Context, offset, limit int) ([]PostWithAuthor, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed feed repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("creating feed post: %w", err)
	}
	return nil
}

func (r *gormRepository) ListWithAuthors(ctx context.Context, offset, limit int) ([]PostWithAuthor, error) {
	var rows []PostWithAuthor
	err := r.db.WithContext(ctx).
		Table("feed_posts").
		Select("feed_posts.id, feed_posts.user_id, feed_posts.message, feed_posts.created_at, users.first_name, users.last_name, users.avatar_url").
		Joins("JOIN users ON users.id = feed_posts.user_id").
		Order("feed_posts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing feed posts: %w", err)
	}
	return rows, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Post{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting feed posts: %w", err)
	}
	return total, nil
}
