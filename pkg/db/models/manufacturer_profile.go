package models

import (
	"time"

	"github.com/google/uuid"
)

// ManufacturerProfile describes a manufacturer's production capabilities.
type ManufacturerProfile struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	CompanyName        string    `gorm:"column:company_name;not null;default:''"`
	Industry           string    `gorm:"column:industry;not null;default:''"`
	ProductionCapacity int       `gorm:"column:production_capacity;not null;default:0"`
	Location           string    `gorm:"column:location;not null;default:''"`
	Email              string    `gorm:"column:email;not null;default:''"`
	Phone              string    `gorm:"column:phone;not null;default:''"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
