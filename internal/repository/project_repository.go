package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project, orderIndex *int) (*models.Project, error) {
	p.ID = uuid.New()
	now := time.Now()

	technologies := p.Technologies
	if technologies == nil {
		technologies = pq.StringArray{}
	}

	values := map[string]interface{}{
		"id":            p.ID,
		"title":         p.Title,
		"description":   p.Description,
		"technologies":  technologies,
		"github_url":    p.GithubURL,
		"live_url":      p.LiveURL,
		"thumbnail_url": p.ThumbnailURL,
		"order_index":   nextOrderIndexExpr("projects", orderIndex),
		"created_at":    now,
		"updated_at":    now,
	}

	if err := r.db.WithContext(ctx).Model(&models.Project{}).Create(values).Error; err != nil {
		return nil, err
	}

	var created models.Project
	if err := r.db.WithContext(ctx).First(&created, "id = ?", p.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Project, error) {
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated models.Project
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
