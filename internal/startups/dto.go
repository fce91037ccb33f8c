package startups

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
)

// StartupDTO is the transport shape for a startup listing.
type StartupDTO struct {
	ID           uuid.UUID       `json:"id"`
	FounderID    uuid.UUID       `json:"founder_id"`
	Name         string          `json:"name"`
	Niche        string          `json:"niche"`
	Valuation    decimal.Decimal `json:"valuation"`
	Stage        string          `json:"stage"`
	Vision       string          `json:"vision"`
	PitchDeckURL *string         `json:"pitch_deck_url,omitempty"`
	DemoVideoURL *string         `json:"demo_video_url,omitempty"`
	Approved     bool            `json:"approved"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StartupPageDTO carries one cursor page of startups.
type StartupPageDTO struct {
	Items      []StartupDTO `json:"items"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// CreateStartupDTO holds the data required to persist a new startup.
type CreateStartupDTO struct {
	FounderID    uuid.UUID
	Name         string
	Niche        string
	Valuation    decimal.Decimal
	Stage        string
	Vision       string
	PitchDeckURL *string
	DemoVideoURL *string
}

// UpdateStartupDTO carries the founder-editable fields; nil means unchanged.
type UpdateStartupDTO struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Niche        *string          `json:"niche" validate:"omitempty,max=100"`
	Valuation    *decimal.Decimal `json:"valuation"`
	Stage        *string          `json:"stage" validate:"omitempty,max=100"`
	Vision       *string          `json:"vision" validate:"omitempty,max=5000"`
	PitchDeckURL *string          `json:"pitch_deck_url" validate:"omitempty,url"`
	DemoVideoURL *string          `json:"demo_video_url" validate:"omitempty,url"`
}

func FromModel(s *models.Startup) *StartupDTO {
	if s == nil {
		return nil
	}

	return &StartupDTO{
		ID:           s.ID,
		FounderID:    s.FounderID,
		Name:         s.Name,
		Niche:        s.Niche,
		Valuation:    s.Valuation,
		Stage:        s.Stage,
		Vision:       s.Vision,
		PitchDeckURL: s.PitchDeckURL,
		DemoVideoURL: s.DemoVideoURL,
		Approved:     s.Approved,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (c CreateStartupDTO) ToModel() *models.Startup {
	return &models.Startup{
		FounderID:    c.FounderID,
		Name:         c.Name,
		Niche:        c.Niche,
		Valuation:    c.Valuation,
		Stage:        c.Stage,
		Vision:       c.Vision,
		PitchDeckURL: c.PitchDeckURL,
		DemoVideoURL: c.DemoVideoURL,
	}
}

func (u UpdateStartupDTO) columns() map[string]any {
	updates := map[string]any{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Niche != nil {
		updates["niche"] = *u.Niche
	}
	if u.Valuation != nil {
		updates["valuation"] = *u.Valuation
	}
	if u.Stage != nil {
		updates["stage"] = *u.Stage
	}
	if u.Vision != nil {
		updates["vision"] = *u.Vision
	}
	if u.PitchDeckURL != nil {
		updates["pitch_deck_url"] = *u.PitchDeckURL
	}
	if u.DemoVideoURL != nil {
		updates["demo_video_url"] = *u.DemoVideoURL
	}
	return updates
}
