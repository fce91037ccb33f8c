package startups

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// ApprovalFilter selects which moderation bucket a listing covers.
type ApprovalFilter string

const (
	ApprovalAll      ApprovalFilter = "all"
	ApprovalPending  ApprovalFilter = "pending"
	ApprovalApproved ApprovalFilter = "approved"
)

// ListFilter captures the directory query surface.
type ListFilter struct {
	Search       string
	Niche        string
	Stage        string
	ApprovedOnly bool
	Approval     ApprovalFilter
}

// Repository encapsulates startup persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a startups repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a startup row for the founder.
func (r *Repository) Create(ctx context.Context, dto CreateStartupDTO) (*models.Startup, error) {
	startup := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(startup).Error; err != nil {
		return nil, err
	}
	return startup, nil
}

// FindByID loads a startup by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Startup, error) {
	var startup models.Startup
	if err := r.db.WithContext(ctx).First(&startup, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &startup, nil
}

// FindByFounderID loads the startup owned by the given user.
func (r *Repository) FindByFounderID(ctx context.Context, founderID uuid.UUID) (*models.Startup, error) {
	var startup models.Startup
	if err := r.db.WithContext(ctx).Where("founder_id = ?", founderID).First(&startup).Error; err != nil {
		return nil, err
	}
	return &startup, nil
}

// Update applies the provided column set to the founder's startup.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Startup, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Startup{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// SetApproved flips the moderation flag.
func (r *Repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Startup{}).
		Where("id = ?", id).
		UpdateColumn("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns a cursor page of startups matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter, cursor string, limit int) (StartupPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return StartupPageDTO{}, err
	}

	query := r.db.WithContext(ctx).Model(&models.Startup{})
	query = applyFilter(query, filter)

	if decodedCursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.Startup
	err = query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Find(&rows).Error
	if err != nil {
		return StartupPageDTO{}, err
	}

	page := StartupPageDTO{Items: make([]StartupDTO, 0, len(rows))}
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

// CountByApproved returns the number of startups with the given moderation flag.
func (r *Repository) CountByApproved(ctx context.Context, approved bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Startup{}).
		Where("approved = ?", approved).
		Count(&count).Error
	return count, err
}

// ListRecent returns the newest startups up to the provided limit.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]StartupDTO, error) {
	var rows []models.Startup
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]StartupDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func applyFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.ApprovedOnly {
		query = query.Where("approved = ?", true)
	}
	switch filter.Approval {
	case ApprovalPending:
		query = query.Where("approved = ?", false)
	case ApprovalApproved:
		query = query.Where("approved = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR niche ILIKE ?", pattern, pattern)
	}
	if niche := strings.TrimSpace(filter.Niche); niche != "" {
		query = query.Where("niche = ?", niche)
	}
	if stage := strings.TrimSpace(filter.Stage); stage != "" {
		query = query.Where("stage = ?", stage)
	}
	return query
}
