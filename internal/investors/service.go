package investors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

// Service exposes investor profile reads and self-service updates.
type Service interface {
	Profile(ctx context.Context, profileID uuid.UUID) (*InvestorProfileDTO, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, dto UpdateInvestorProfileDTO) (*InvestorProfileDTO, error)
	List(ctx context.Context, cursor string, limit int) (InvestorPageDTO, error)
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.InvestorProfile, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.InvestorProfile, error)
	List(ctx context.Context, cursor string, limit int) (InvestorPageDTO, error)
}

// ServiceParams groups dependencies for the investors service.
type ServiceParams struct {
	Repo repository
}

type service struct {
	repo repository
}

// NewService builds an investors service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("investors repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// Profile loads the investor's own profile.
func (s *service) Profile(ctx context.Context, profileID uuid.UUID) (*InvestorProfileDTO, error) {
	row, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return FromModel(row), nil
}

// UpdateProfile applies the provided fields. Range bounds are validated
// together so min never exceeds max.
func (s *service) UpdateProfile(ctx context.Context, profileID uuid.UUID, dto UpdateInvestorProfileDTO) (*InvestorProfileDTO, error) {
	row, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	min := row.InvestmentRangeMin
	max := row.InvestmentRangeMax
	if dto.InvestmentRangeMin != nil {
		min = *dto.InvestmentRangeMin
	}
	if dto.InvestmentRangeMax != nil {
		max = *dto.InvestmentRangeMax
	}
	if min.GreaterThan(max) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "investment range minimum exceeds maximum")
	}

	updated, err := s.repo.Update(ctx, profileID, dto.Columns())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update investor profile")
	}
	return FromModel(updated), nil
}

// List pages through investor profiles for recipient picking.
func (s *service) List(ctx context.Context, cursor string, limit int) (InvestorPageDTO, error) {
	page, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return InvestorPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list investors")
	}
	return page, nil
}

func (s *service) load(ctx context.Context, profileID uuid.UUID) (*models.InvestorProfile, error) {
	if profileID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile id is required")
	}
	row, err := s.repo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "investor profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load investor profile")
	}
	return row, nil
}
