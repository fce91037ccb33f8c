package manufacturers

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
)

// ManufacturerProfileDTO is the transport shape for a manufacturer profile.
type ManufacturerProfileDTO struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	Industry           string    `json:"industry"`
	ProductionCapacity int       `json:"production_capacity"`
	Location           string    `json:"location"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateManufacturerProfileDTO holds the data required to persist a new profile.
type CreateManufacturerProfileDTO struct {
	UserID             uuid.UUID
	CompanyName        string
	Industry           string
	ProductionCapacity int
	Location           string
	Email              string
	Phone              string
}

// UpdateManufacturerProfileDTO carries the editable fields; nil means unchanged.
type UpdateManufacturerProfileDTO struct {
	CompanyName        *string `json:"company_name" validate:"omitempty,max=200"`
	Industry           *string `json:"industry" validate:"omitempty,max=200"`
	ProductionCapacity *int    `json:"production_capacity" validate:"omitempty,min=0"`
	Location           *string `json:"location" validate:"omitempty,max=200"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Phone              *string `json:"phone" validate:"omitempty,max=50"`
}

func FromModel(p *models.ManufacturerProfile) *ManufacturerProfileDTO {
	if p == nil {
		return nil
	}

	return &ManufacturerProfileDTO{
		ID:                 p.ID,
		UserID:             p.UserID,
		CompanyName:        p.CompanyName,
		Industry:           p.Industry,
		ProductionCapacity: p.ProductionCapacity,
		Location:           p.Location,
		Email:              p.Email,
		Phone:              p.Phone,
		CreatedAt:          p.CreatedAt,
	}
}

func (c CreateManufacturerProfileDTO) ToModel() *models.ManufacturerProfile {
	return &models.ManufacturerProfile{
		UserID:             c.UserID,
		CompanyName:        c.CompanyName,
		Industry:           c.Industry,
		ProductionCapacity: c.ProductionCapacity,
		Location:           c.Location,
		Email:              c.Email,
		Phone:              c.Phone,
	}
}

func (u UpdateManufacturerProfileDTO) Columns() map[string]any {
	updates := map[string]any{}
	if u.CompanyName != nil {
		updates["company_name"] = *u.CompanyName
	}
	if u.Industry != nil {
		updates["industry"] = *u.Industry
	}
	if u.ProductionCapacity != nil {
		updates["production_capacity"] = *u.ProductionCapacity
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	if u.Email != nil {
		updates["email"] = *u.Email
	}
	if u.Phone != nil {
		updates["phone"] = *u.Phone
	}
	return updates
}
