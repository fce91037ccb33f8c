package connections

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// Repository encapsulates connection request persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a connections repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate inserts the pair if absent and returns the row either way.
// The second return value reports whether this call created it.
func (r *Repository) GetOrCreate(ctx context.Context, manufacturerID, startupID uuid.UUID, message string) (*models.ConnectionRequest, bool, error) {
	if manufacturerID == uuid.Nil || startupID == uuid.Nil {
		return nil, false, gorm.ErrInvalidValue
	}

	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO connection_requests (manufacturer_id, startup_id, message)
		 VALUES (?, ?, ?)
		 ON CONFLICT (manufacturer_id, startup_id) DO NOTHING`,
		manufacturerID, startupID, message,
	)
	if result.Error != nil {
		return nil, false, result.Error
	}
	created := result.RowsAffected == 1

	var row models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Where("manufacturer_id = ? AND startup_id = ?", manufacturerID, startupID).
		First(&row).Error
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

// FindByID loads a connection request by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ConnectionRequest, error) {
	var row models.ConnectionRequest
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatusIf transitions the row only when it currently holds the
// expected status. Returns the number of rows changed.
func (r *Repository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to enums.ConnectionStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	return result.RowsAffected, result.Error
}

// ListByManufacturer returns the manufacturer's connection history, newest first.
func (r *Repository) ListByManufacturer(ctx context.Context, manufacturerID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error) {
	return r.list(ctx, "manufacturer_id = ?", manufacturerID, cursor, limit)
}

// ListByStartup returns the startup's incoming requests, newest first.
func (r *Repository) ListByStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error) {
	return r.list(ctx, "startup_id = ?", startupID, cursor, limit)
}

func (r *Repository) list(ctx context.Context, clause string, owner uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return ConnectionPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where(clause, owner)
	if decodedCursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.ConnectionRequest
	err = query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Find(&rows).Error
	if err != nil {
		return ConnectionPageDTO{}, err
	}

	page := ConnectionPageDTO{Items: make([]ConnectionDTO, 0, len(rows))}
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
	Status enums.ConnectionStatus
	Search string
}

// ListAll returns a cursor page across all connection requests for the admin console.
func (r *Repository) ListAll(ctx context.Context, filter AdminFilter, cursor string, limit int) (ConnectionPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return ConnectionPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Table("connection_requests cr").
		Select("cr.*").
		Joins("JOIN startups s ON s.id = cr.startup_id").
		Joins("JOIN manufacturer_profiles mp ON mp.id = cr.manufacturer_id")
	if filter.Status != "" {
		query = query.Where("cr.status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("s.name ILIKE ? OR mp.company_name ILIKE ?", pattern, pattern)
	}
	if decodedCursor != nil {
		query = query.Where(
			"(cr.created_at < ?) OR (cr.created_at = ? AND cr.id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.ConnectionRequest
	err = query.
		Order("cr.created_at DESC").
		Order("cr.id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Scan(&rows).Error
	if err != nil {
		return ConnectionPageDTO{}, err
	}

	page := ConnectionPageDTO{Items: make([]ConnectionDTO, 0, len(rows))}
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

// CountByManufacturer returns how many requests the manufacturer has made.
func (r *Repository) CountByManufacturer(ctx context.Context, manufacturerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("manufacturer_id = ?", manufacturerID).
		Count(&count).Error
	return count, err
}

// CountByStartup returns how many requests the startup has received.
func (r *Repository) CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("startup_id = ?", startupID).
		Count(&count).Error
	return count, err
}

// CountByStatus returns the number of connection requests with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.ConnectionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
