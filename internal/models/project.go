package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project is one showcased project. Technologies keeps its display
// order and maps to a Postgres TEXT[] column.
type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"type:text;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`
	GithubURL    *string        `gorm:"type:text" json:"github_url"`
	LiveURL      *string        `gorm:"type:text" json:"live_url"`
	ThumbnailURL *string        `gorm:"type:text" json:"thumbnail_url"`
	OrderIndex   int            `gorm:"default:0" json:"order_index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
