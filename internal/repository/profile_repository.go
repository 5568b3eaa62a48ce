package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/models"
)

// Default profile values planted on first read of an empty table.
const (
	defaultProfileName    = "Afito Indra Permana"
	defaultProfileTagline = "Passionate about creating innovative solutions through code"
	defaultProfileTitle   = "Informatics Engineer"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// List returns all profiles, seeding the default row first when the
// table is empty. The seed is a single insert-if-empty statement, so
// two concurrent first reads cannot both plant a row.
func (r *ProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		return profiles, nil
	}

	now := time.Now()
	err = r.db.WithContext(ctx).Exec(
		`INSERT INTO profiles (id, full_name, tagline, title, photo_url, created_at, updated_at)
		 SELECT ?, ?, ?, ?, NULL, ?, ?
		 WHERE NOT EXISTS (SELECT 1 FROM profiles)`,
		uuid.New(), defaultProfileName, defaultProfileTagline, defaultProfileTitle, now, now,
	).Error
	if err != nil {
		return nil, err
	}

	return r.list(ctx)
}

func (r *ProfileRepository) list(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

// Update applies a partial update. The profile is never created or
// deleted through this path.
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Profile, error) {
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated models.Profile
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
