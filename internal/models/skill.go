package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	SkillCategoryHard SkillCategory = "hard"
	SkillCategorySoft SkillCategory = "soft"
)

// Skill is a single portfolio skill. IconName is a symbolic icon
// reference resolved by the frontend, not a URL. Proficiency is a
// 0-100 percentage and may be absent for soft skills.
type Skill struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"type:text;not null" json:"name"`
	Category    SkillCategory `gorm:"type:skill_category;not null" json:"category"`
	IconName    *string       `gorm:"type:text" json:"icon_name"`
	Proficiency *int          `json:"proficiency"`
	OrderIndex  int           `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}
