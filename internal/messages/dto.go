package messages

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
)

// MessageDTO is the API representation of a direct message.
type MessageDTO struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromModel maps a persisted message onto its DTO.
func FromModel(m *models.Message) *MessageDTO {
	return &MessageDTO{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Subject:     m.Subject,
		Content:     m.Content,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

// MessagePageDTO is a cursor page of messages, newest first.
type MessagePageDTO struct {
	Items      []MessageDTO `json:"items"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// ComposeRequest is the payload for sending a message.
type ComposeRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required,max=255"`
	Content     string    `json:"content" validate:"required"`
}
