package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users. The read flag flips once,
// on the recipient's first view.
type Message struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SenderID    uuid.UUID `gorm:"column:sender_id;type:uuid;not null;index:messages_sender_id_idx"`
	RecipientID uuid.UUID `gorm:"column:recipient_id;type:uuid;not null;index:messages_recipient_id_idx"`
	Subject     string    `gorm:"column:subject;not null"`
	Content     string    `gorm:"column:content;not null"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
