package investors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// Repository encapsulates investor profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an investors repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an investor profile row.
func (r *Repository) Create(ctx context.Context, dto CreateInvestorProfileDTO) (*models.InvestorProfile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByID loads an investor profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.InvestorProfile, error) {
	var profile models.InvestorProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID loads the profile owned by the given user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.InvestorProfile, error) {
	var profile models.InvestorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the provided column set to the profile.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.InvestorProfile, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.InvestorProfile{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// List returns a cursor page of investor profiles, newest first. Startups use
// this to pick application recipients.
func (r *Repository) List(ctx context.Context, cursor string, limit int) (InvestorPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return InvestorPageDTO{}, err
	}

	query := r.db.WithContext(ctx).Model(&models.InvestorProfile{})
	if decodedCursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.InvestorProfile
	err = query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Find(&rows).Error
	if err != nil {
		return InvestorPageDTO{}, err
	}

	page := InvestorPageDTO{Items: make([]InvestorProfileDTO, 0, len(rows))}
	hasMore := len(rows) > normalizedLimit
	if hasMore {
		rows = rows[:normalizedLimit]
	}
	for i := range rows {
		page.Items = append(page.Items, *FromModel(&rows[i]))
	}
	if hasMore && len(rows) > 0 {
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &next
	}
	return page, nil
}
