package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestorProfile carries investor preferences used by startups when
// selecting application recipients.
type InvestorProfile struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID       `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	InvestmentRangeMin decimal.Decimal `gorm:"column:investment_range_min;type:numeric(14,2);not null;default:0"`
	InvestmentRangeMax decimal.Decimal `gorm:"column:investment_range_max;type:numeric(14,2);not null;default:0"`
	IndustryFocus      string          `gorm:"column:industry_focus;not null;default:''"`
	Location           string          `gorm:"column:location;not null;default:''"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
