// File: internal/guestbook/service.go
package guestbook

import (
	"context"
	"strings"

	"github.com/wflore19/portfolio-backend/internal/common"

	"go.uber.org/zap"
)

// Service provides guestbook business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new guestbook service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("GuestbookService"),
	}
}

// Sign records a message from the given user.
func (s *Service) Sign(ctx context.Context, userID int64, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrBadRequest.WithDetails("Message cannot be empty.")
	}

	message := &Message{UserID: userID, Message: text}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("Guestbook signed",
		zap.Int64("messageID", message.ID), zap.Int64("userID", userID))
	return message, nil
}

// List returns a page of messages, newest first, with author details.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]MessageWithAuthor, *common.Pagination, error) {
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
