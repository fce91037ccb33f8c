package manufacturers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

// Service exposes manufacturer profile reads and self-service updates.
type Service interface {
	Profile(ctx context.Context, profileID uuid.UUID) (*ManufacturerProfileDTO, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, dto UpdateManufacturerProfileDTO) (*ManufacturerProfileDTO, error)
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ManufacturerProfile, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.ManufacturerProfile, error)
}

// ServiceParams groups dependencies for the manufacturers service.
type ServiceParams struct {
	Repo repository
}

type service struct {
	repo repository
}

// NewService builds a manufacturers service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("manufacturers repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// Profile loads the manufacturer's own profile.
func (s *service) Profile(ctx context.Context, profileID uuid.UUID) (*ManufacturerProfileDTO, error) {
	row, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return FromModel(row), nil
}

// UpdateProfile applies the provided fields to the profile.
func (s *service) UpdateProfile(ctx context.Context, profileID uuid.UUID, dto UpdateManufacturerProfileDTO) (*ManufacturerProfileDTO, error) {
	if _, err := s.load(ctx, profileID); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, profileID, dto.Columns())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update manufacturer profile")
	}
	return FromModel(updated), nil
}

func (s *service) load(ctx context.Context, profileID uuid.UUID) (*models.ManufacturerProfile, error) {
	if profileID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile id is required")
	}
	row, err := s.repo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "manufacturer profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load manufacturer profile")
	}
	return row, nil
}
