package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venturehub/venturehub-backend/pkg/enums"
)

// InvestmentApplication is a startup's pitch to a single investor. A batch
// apply writes one row per recipient; the pair is intentionally not unique.
type InvestmentApplication struct {
	ID              uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StartupID       uuid.UUID               `gorm:"column:startup_id;type:uuid;not null;index:investment_applications_startup_id_idx"`
	InvestorID      uuid.UUID               `gorm:"column:investor_id;type:uuid;not null;index:investment_applications_investor_id_idx"`
	Subject         string                  `gorm:"column:subject;not null"`
	Message         string                  `gorm:"column:message;not null"`
	AmountRequested decimal.Decimal         `gorm:"column:amount_requested;type:numeric(14,2);not null;default:0"`
	EquityOffered   decimal.Decimal         `gorm:"column:equity_offered;type:numeric(5,2);not null;default:0"`
	Status          enums.ApplicationStatus `gorm:"column:status;type:application_status;not null;default:'PENDING'"`
	CreatedAt       time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
