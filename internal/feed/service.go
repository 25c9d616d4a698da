// File: internal/feed/service.go
package feed

import (
	"context"
	"strings"

	"github.com/wflore19/portfolio-backend/internal/common"

	"go.uber.org/zap"
)

// Service provides feed business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new feed service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("FeedService"),
	}
}

// Publish records a post from the given user.
func (s *Service) Publish(ctx context.Context, userID int64, text string) (*Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrBadRequest.WithDetails("Post cannot be empty.")
	}

	post := &Post{UserID: userID, Message: text}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Feed post published",
		zap.Int64("postID", post.ID), zap.Int64("userID", userID))
	return post, nil
}

// List returns a page of posts, newest first, with author details.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]PostWithAuthor, *common.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListWithAuthors(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, nil, err
	}

	return rows, common.NewPagination(total, page, pageSize), nil
}
