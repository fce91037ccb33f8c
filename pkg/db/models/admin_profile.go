package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfile marks a platform administrator. Created only by the
// create-admin command, never by registration.
type AdminProfile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Department   string    `gorm:"column:department;not null;default:'Platform Management'"`
	IsSuperAdmin bool      `gorm:"column:is_super_admin;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
