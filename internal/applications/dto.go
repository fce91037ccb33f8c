package applications

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
)

// ApplicationDTO is the transport shape for an investment application.
type ApplicationDTO struct {
	ID              uuid.UUID               `json:"id"`
	StartupID       uuid.UUID               `json:"startup_id"`
	InvestorID      uuid.UUID               `json:"investor_id"`
	Subject         string                  `json:"subject"`
	Message         string                  `json:"message"`
	AmountRequested decimal.Decimal         `json:"amount_requested"`
	EquityOffered   decimal.Decimal         `json:"equity_offered"`
	Status          enums.ApplicationStatus `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// ApplicationPageDTO carries one cursor page of applications.
type ApplicationPageDTO struct {
	Items      []ApplicationDTO `json:"items"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

// ApplyRequest is the startup-side payload. One PENDING row is written per
// investor in the list, all sharing the same pitch fields.
type ApplyRequest struct {
	InvestorIDs     []uuid.UUID     `json:"investor_ids" validate:"required,min=1,dive,required"`
	Subject         string          `json:"subject" validate:"required,max=200"`
	Message         string          `json:"message" validate:"required,max=5000"`
	AmountRequested decimal.Decimal `json:"amount_requested"`
	EquityOffered   decimal.Decimal `json:"equity_offered"`
}

// DecisionRequest is the investor-side payload for status updates.
type DecisionRequest struct {
	Status enums.ApplicationStatus `json:"status" validate:"required"`
}

func FromModel(a *models.InvestmentApplication) *ApplicationDTO {
	if a == nil {
		return nil
	}

	return &ApplicationDTO{
		ID:              a.ID,
		StartupID:       a.StartupID,
		InvestorID:      a.InvestorID,
		Subject:         a.Subject,
		Message:         a.Message,
		AmountRequested: a.AmountRequested,
		EquityOffered:   a.EquityOffered,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
