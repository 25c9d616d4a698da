// File: internal/project/model.go

// Package project serves the portfolio's project showcase. Entries are
// seeded into the database out of band; the API is read-only.
package project

import (
	"github.com/wflore19/portfolio-backend/internal/common"
)

// Project is a portfolio entry.
type Project struct {
	common.BaseModel
	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	RepoURL     string `gorm:"column:repo_url;type:varchar(255)" json:"repoUrl,omitempty"`
	LiveURL     string `gorm:"column:live_url;type:varchar(255)" json:"liveUrl,omitempty"`
	ImageURL    string `gorm:"column:image_url;type:varchar(255)" json:"imageUrl,omitempty"`
	SortOrder   int    `gorm:"column:sort_order;default:0" json:"-"`
}

// TableName specifies the table name for the Project model.
func (Project) TableName() string {
	return "projects"
}
