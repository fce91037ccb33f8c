package manufacturers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
)

// Repository encapsulates manufacturer profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a manufacturers repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a manufacturer profile row.
func (r *Repository) Create(ctx context.Context, dto CreateManufacturerProfileDTO) (*models.ManufacturerProfile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByID loads a manufacturer profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ManufacturerProfile, error) {
	var profile models.ManufacturerProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID loads the profile owned by the given user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.ManufacturerProfile, error) {
	var profile models.ManufacturerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the provided column set to the profile.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.ManufacturerProfile, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.ManufacturerProfile{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}
