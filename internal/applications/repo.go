package applications

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// Repository encapsulates investment application persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an applications repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts one row per recipient in a single statement.
func (r *Repository) CreateBatch(ctx context.Context, rows []models.InvestmentApplication) ([]models.InvestmentApplication, error) {
	if len(rows) == 0 {
		return nil, gorm.ErrInvalidValue
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads an application by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.InvestmentApplication, error) {
	var application models.InvestmentApplication
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// DeleteIfPending removes the row only while it is still PENDING. Returns the
// number of rows removed so the service can distinguish a state conflict.
func (r *Repository) DeleteIfPending(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, enums.ApplicationStatusPending).
		Delete(&models.InvestmentApplication{})
	return result.RowsAffected, result.Error
}

// UpdateStatus sets the lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ApplicationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.InvestmentApplication{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByStartup returns the startup's applications, newest first.
func (r *Repository) ListByStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error) {
	return r.list(ctx, "startup_id = ?", startupID, cursor, limit)
}

// ListByInvestor returns the applications addressed to the investor, newest first.
func (r *Repository) ListByInvestor(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error) {
	return r.list(ctx, "investor_id = ?", investorID, cursor, limit)
}

func (r *Repository) list(ctx context.Context, clause string, owner uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return ApplicationPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Model(&models.InvestmentApplication{}).
		Where(clause, owner)
	if decodedCursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.InvestmentApplication
	err = query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Find(&rows).Error
	if err != nil {
		return ApplicationPageDTO{}, err
	}

	page := ApplicationPageDTO{Items: make([]ApplicationDTO, 0, len(rows))}
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

// AdminFilter captures the moderation listing surface.
type AdminFilter struct {
	Status enums.ApplicationStatus
	Search string
}

// ListAll returns a cursor page across all applications for the admin console.
func (r *Repository) ListAll(ctx context.Context, filter AdminFilter, cursor string, limit int) (ApplicationPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return ApplicationPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Table("investment_applications ia").
		Select("ia.*").
		Joins("JOIN startups s ON s.id = ia.startup_id").
		Joins("JOIN investor_profiles ip ON ip.id = ia.investor_id").
		Joins("JOIN users u ON u.id = ip.user_id")
	if filter.Status != "" {
		query = query.Where("ia.status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("s.name ILIKE ? OR u.username ILIKE ?", pattern, pattern)
	}
	if decodedCursor != nil {
		query = query.Where(
			"(ia.created_at < ?) OR (ia.created_at = ? AND ia.id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.InvestmentApplication
	err = query.
		Order("ia.created_at DESC").
		Order("ia.id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Scan(&rows).Error
	if err != nil {
		return ApplicationPageDTO{}, err
	}

	page := ApplicationPageDTO{Items: make([]ApplicationDTO, 0, len(rows))}
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

// CountByStatus returns the number of applications with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InvestmentApplication{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *Repository) countByParty(ctx context.Context, clause string, profileID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InvestmentApplication{}).
		Where(clause, profileID).
		Count(&count).Error
	return count, err
}

// CountByStartup returns how many applications the startup has sent.
func (r *Repository) CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error) {
	return r.countByParty(ctx, "startup_id = ?", startupID)
}

// CountByInvestor returns how many applications the investor has received.
func (r *Repository) CountByInvestor(ctx context.Context, investorID uuid.UUID) (int64, error) {
	return r.countByParty(ctx, "investor_id = ?", investorID)
}

// ListRecent returns the newest applications up to the provided limit.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]ApplicationDTO, error) {
	var rows []models.InvestmentApplication
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
