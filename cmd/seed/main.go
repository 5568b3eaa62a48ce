// Seeds sample portfolio content for local development. Tables that
// already hold rows are left untouched.
package main

import (
	"context"
	"log"

	"github.com/afitoip/portfolio-api/internal/config"
	"github.com/afitoip/portfolio-api/internal/database"
	"github.com/afitoip/portfolio-api/internal/models"
	"github.com/afitoip/portfolio-api/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Bootstrap(db); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	ctx := context.Background()

	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Planting the default profile row is the same get-or-create used
	// by GET /profiles.
	if _, err := profileRepo.List(ctx); err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}

	skills, err := skillRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list skills: %v", err)
	}
	// Bootstrap seeds one skill row; anything beyond that means the
	// admin has taken over and we must not touch the table.
	if len(skills) <= 1 {
		samples := []models.Skill{
			{Name: "Back-End Development", Category: models.SkillCategoryHard, IconName: strPtr("Server"), Proficiency: intPtr(85)},
			{Name: "Database Design", Category: models.SkillCategoryHard, IconName: strPtr("Database"), Proficiency: intPtr(80)},
			{Name: "Communication", Category: models.SkillCategorySoft, IconName: strPtr("MessageCircle")},
		}
		for i := range samples {
			if _, err := skillRepo.Create(ctx, &samples[i], nil); err != nil {
				log.Fatalf("Failed to seed skill %q: %v", samples[i].Name, err)
			}
		}
		log.Printf("Seeded %d sample skills", len(samples))
	}

	projects, err := projectRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) == 0 {
		samples := []models.Project{
			{
				Title:        "Personal Portfolio",
				Description:  "This website: a portfolio with an admin content panel.",
				Technologies: []string{"Go", "PostgreSQL", "React"},
			},
			{
				Title:        "Campus Event Tracker",
				Description:  "Aggregates campus event feeds into a single calendar.",
				Technologies: []string{"Go", "PostgreSQL"},
			},
		}
		for i := range samples {
			if _, err := projectRepo.Create(ctx, &samples[i], nil); err != nil {
				log.Fatalf("Failed to seed project %q: %v", samples[i].Title, err)
			}
		}
		log.Printf("Seeded %d sample projects", len(samples))
	}

	log.Println("Seeding complete")
}
