package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the site owner's card shown on the landing page. There is
// exactly one row in practice: reads seed a default row when the table
// is empty, and no delete operation exists.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"type:text;not null" json:"full_name"`
	Tagline   *string   `gorm:"type:text" json:"tagline"`
	Title     *string   `gorm:"type:text" json:"title"`
	PhotoURL  *string   `gorm:"type:text" json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
