package messages

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/pagination"
)

// Repository encapsulates message persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a messages repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new message row.
func (r *Repository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindByID loads a single message.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead flips is_read for the recipient's own unread message. The
// conditional WHERE makes the flip a one-time, recipient-only event.
func (r *Repository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ? AND recipient_id = ? AND is_read = false", id, recipientID).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListInbox returns messages addressed to the user, newest first.
func (r *Repository) ListInbox(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error) {
	return r.list(ctx, "recipient_id = ?", userID, cursor, limit)
}

// ListSent returns messages the user authored, newest first.
func (r *Repository) ListSent(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error) {
	return r.list(ctx, "sender_id = ?", userID, cursor, limit)
}

// CountUnread returns the number of unread inbox messages.
func (r *Repository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

func (r *Repository) list(ctx context.Context, condition string, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	decodedCursor, err := pagination.ParseCursor(cursor)
	if err != nil {
		return MessagePageDTO{}, err
	}

	query := r.db.WithContext(ctx).Model(&models.Message{}).Where(condition, userID)
	if decodedCursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.Message
	err = query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(limit)).
		Find(&rows).Error
	if err != nil {
		return MessagePageDTO{}, err
	}

	page := MessagePageDTO{Items: make([]MessageDTO, 0, len(rows))}
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
