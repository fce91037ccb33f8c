package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Startup is the founder-owned company listing. Only approved rows are
// visible outside the founder and admin surfaces.
type Startup struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FounderID    uuid.UUID       `gorm:"column:founder_id;type:uuid;not null;uniqueIndex"`
	Name         string          `gorm:"column:name;not null"`
	Niche        string          `gorm:"column:niche;not null"`
	Valuation    decimal.Decimal `gorm:"column:valuation;type:numeric(14,2);not null;default:0"`
	Stage        string          `gorm:"column:stage;not null"`
	Vision       string          `gorm:"column:vision;not null"`
	PitchDeckURL *string         `gorm:"column:pitch_deck_url"`
	DemoVideoURL *string         `gorm:"column:demo_video_url"`
	Approved     bool            `gorm:"column:approved;not null;default:false"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
