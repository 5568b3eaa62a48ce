package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Create(ctx context.Context, s *models.Skill, orderIndex *int) (*models.Skill, error) {
	s.ID = uuid.New()
	now := time.Now()

	values := map[string]interface{}{
		"id":          s.ID,
		"name":        s.Name,
		"category":    s.Category,
		"icon_name":   s.IconName,
		"proficiency": s.Proficiency,
		"order_index": nextOrderIndexExpr("skills", orderIndex),
		"created_at":  now,
		"updated_at":  now,
	}

	if err := r.db.WithContext(ctx).Model(&models.Skill{}).Create(values).Error; err != nil {
		return nil, err
	}

	var created models.Skill
	if err := r.db.WithContext(ctx).First(&created, "id = ?", s.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SkillRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Skill, error) {
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated models.Skill
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
