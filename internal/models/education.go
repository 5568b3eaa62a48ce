package models

import (
	"time"

	"github.com/google/uuid"
)

// Education is one schooling entry. EndYear is nil while ongoing.
// Achievements holds a newline-delimited list edited as free text.
type Education struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Institution  string    `gorm:"type:text;not null" json:"institution"`
	Degree       string    `gorm:"type:text;not null" json:"degree"`
	FieldOfStudy *string   `gorm:"type:text" json:"field_of_study"`
	StartYear    int       `gorm:"not null" json:"start_year"`
	EndYear      *int      `json:"end_year"`
	Description  *string   `gorm:"type:text" json:"description"`
	Achievements *string   `gorm:"type:text" json:"achievements"`
	OrderIndex   int       `gorm:"default:0" json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Education) TableName() string {
	return "education"
}
