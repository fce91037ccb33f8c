package favorites

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// Repository encapsulates favorite startup persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert adds the pair and ignores duplicates. Returns whether this call
// created the row.
func (r *Repository) Insert(ctx context.Context, investorID, startupID uuid.UUID) (bool, error) {
	if investorID == uuid.Nil || startupID == uuid.Nil {
		return false, gorm.ErrInvalidValue
	}

	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO favorite_startups (investor_id, startup_id)
		 VALUES (?, ?)
		 ON CONFLICT (investor_id, startup_id) DO NOTHING`,
		investorID, startupID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete removes the pair if it exists. Returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, investorID, startupID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("investor_id = ? AND startup_id = ?", investorID, startupID).
		Delete(&models.FavoriteStartup{})
	return result.RowsAffected, result.Error
}

// CountByInvestor returns the investor's favorite count.
func (r *Repository) CountByInvestor(ctx context.Context, investorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FavoriteStartup{}).
		Where("investor_id = ?", investorID).
		Count(&count).Error
	return count, err
}

type favoritedStartupRow struct {
	models.Startup
	FavoriteID  uuid.UUID `gorm:"column:favorite_id"`
	FavoritedAt time.Time `gorm:"column:favorited_at"`
}

// ListStartups returns the investor's favorited startups, most recently
// favorited first. The cursor tracks the favorite row, not the startup.
func (r *Repository) ListStartups(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (startups.StartupPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return startups.StartupPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Table("favorite_startups fs").
		Select("s.*, fs.id AS favorite_id, fs.created_at AS favorited_at").
		Joins("JOIN startups s ON s.id = fs.startup_id").
		Where("fs.investor_id = ?", investorID)
	if decodedCursor != nil {
		query = query.Where(
			"(fs.created_at < ?) OR (fs.created_at = ? AND fs.id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []favoritedStartupRow
	err = query.
		Order("fs.created_at DESC").
		Order("fs.id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Scan(&rows).Error
	if err != nil {
		return startups.StartupPageDTO{}, err
	}

	page := startups.StartupPageDTO{Items: make([]startups.StartupDTO, 0, len(rows))}
	hasMore := len(rows) > normalizedLimit
	if hasMore {
		rows = rows[:normalizedLimit]
	}
	for i := range rows {
		page.Items = append(page.Items, *startups.FromModel(&rows[i].Startup))
	}
	if hasMore && len(rows) > 0 {
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.FavoritedAt, ID: last.FavoriteID})
		page.NextCursor = &next
	}
	return page, nil
}
