// File: internal/project/repository.go
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/wflore19/portfolio-backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines persistence for projects.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed project repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Project not found.")
		}
		return nil, fmt.Errorf("finding project %d: %w", id, err)
	}
	return &p, nil
}
