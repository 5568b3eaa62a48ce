package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/models"
)

type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

// List returns every education entry in display order.
func (r *EducationRepository) List(ctx context.Context) ([]models.Education, error) {
	var entries []models.Education
	err := r.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Create inserts a new entry. orderIndex nil means "append": the next
// index is computed inside the insert statement itself.
func (r *EducationRepository) Create(ctx context.Context, e *models.Education, orderIndex *int) (*models.Education, error) {
	e.ID = uuid.New()
	now := time.Now()

	values := map[string]interface{}{
		"id":             e.ID,
		"institution":    e.Institution,
		"degree":         e.Degree,
		"field_of_study": e.FieldOfStudy,
		"start_year":     e.StartYear,
		"end_year":       e.EndYear,
		"description":    e.Description,
		"achievements":   e.Achievements,
		"order_index":    nextOrderIndexExpr("education", orderIndex),
		"created_at":     now,
		"updated_at":     now,
	}

	if err := r.db.WithContext(ctx).Model(&models.Education{}).Create(values).Error; err != nil {
		return nil, err
	}

	// Re-read to pick up the computed order_index.
	var created models.Education
	if err := r.db.WithContext(ctx).First(&created, "id = ?", e.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update built from allow-listed columns.
func (r *EducationRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Education, error) {
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Education{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated models.Education
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Education{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
