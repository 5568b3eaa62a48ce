package testutil

import (
	"github.com/afitoip/portfolio-api/internal/models"
)

// StrPtr returns a pointer to s, for optional text fields.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to i, for optional integer fields.
func IntPtr(i int) *int { return &i }

// NewSkill builds a hard skill with sensible defaults.
func NewSkill(name string) *models.Skill {
	return &models.Skill{
		Name:        name,
		Category:    models.SkillCategoryHard,
		IconName:    StrPtr("Code"),
		Proficiency: IntPtr(80),
	}
}

// NewEducation builds an ongoing education entry.
func NewEducation(institution string) *models.Education {
	return &models.Education{
		Institution: institution,
		Degree:      "BSc",
		StartYear:   2021,
	}
}

// NewProject builds a project with two technologies.
func NewProject(title string) *models.Project {
	return &models.Project{
		Title:        title,
		Description:  "A sample project",
		Technologies: []string{"Go", "PostgreSQL"},
	}
}

// NewContactMessage builds a visitor message.
func NewContactMessage(name string) *models.ContactMessage {
	return &models.ContactMessage{
		Name:    name,
		Email:   "visitor@example.com",
		Message: "Hello from a visitor",
	}
}
