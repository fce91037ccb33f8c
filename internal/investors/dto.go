package investors

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
)

// InvestorProfileDTO is the transport shape for an investor profile.
type InvestorProfileDTO struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	InvestmentRangeMin decimal.Decimal `json:"investment_range_min"`
	InvestmentRangeMax decimal.Decimal `json:"investment_range_max"`
	IndustryFocus      string          `json:"industry_focus"`
	Location           string          `json:"location"`
	CreatedAt          time.Time       `json:"created_at"`
}

// InvestorPageDTO carries one cursor page of investor profiles.
type InvestorPageDTO struct {
	Items      []InvestorProfileDTO `json:"items"`
	NextCursor *string              `json:"next_cursor,omitempty"`
}

// CreateInvestorProfileDTO holds the data required to persist a new profile.
type CreateInvestorProfileDTO struct {
	UserID             uuid.UUID
	InvestmentRangeMin decimal.Decimal
	InvestmentRangeMax decimal.Decimal
	IndustryFocus      string
	Location           string
}

// UpdateInvestorProfileDTO carries the editable fields; nil means unchanged.
type UpdateInvestorProfileDTO struct {
	InvestmentRangeMin *decimal.Decimal `json:"investment_range_min"`
	InvestmentRangeMax *decimal.Decimal `json:"investment_range_max"`
	IndustryFocus      *string          `json:"industry_focus" validate:"omitempty,max=200"`
	Location           *string          `json:"location" validate:"omitempty,max=200"`
}

func FromModel(p *models.InvestorProfile) *InvestorProfileDTO {
	if p == nil {
		return nil
	}

	return &InvestorProfileDTO{
		ID:                 p.ID,
		UserID:             p.UserID,
		InvestmentRangeMin: p.InvestmentRangeMin,
		InvestmentRangeMax: p.InvestmentRangeMax,
		IndustryFocus:      p.IndustryFocus,
		Location:           p.Location,
		CreatedAt:          p.CreatedAt,
	}
}

func (c CreateInvestorProfileDTO) ToModel() *models.InvestorProfile {
	return &models.InvestorProfile{
		UserID:             c.UserID,
		InvestmentRangeMin: c.InvestmentRangeMin,
		InvestmentRangeMax: c.InvestmentRangeMax,
		IndustryFocus:      c.IndustryFocus,
		Location:           c.Location,
	}
}

func (u UpdateInvestorProfileDTO) Columns() map[string]any {
	updates := map[string]any{}
	if u.InvestmentRangeMin != nil {
		updates["investment_range_min"] = *u.InvestmentRangeMin
	}
	if u.InvestmentRangeMax != nil {
		updates["investment_range_max"] = *u.InvestmentRangeMax
	}
	if u.IndustryFocus != nil {
		updates["industry_focus"] = *u.IndustryFocus
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	return updates
}
