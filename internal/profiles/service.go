package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

// Service guarantees the role profile row for a user. Registration and login
// both route through EnsureProfile, so a user can never reach a dashboard
// without their profile existing.
type Service interface {
	EnsureProfile(ctx context.Context, user *models.User) (*uuid.UUID, error)
}

type startupRepository interface {
	FindByFounderID(ctx context.Context, founderID uuid.UUID) (*models.Startup, error)
	Create(ctx context.Context, dto startups.CreateStartupDTO) (*models.Startup, error)
}

type investorRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.InvestorProfile, error)
	Create(ctx context.Context, dto investors.CreateInvestorProfileDTO) (*models.InvestorProfile, error)
}

type manufacturerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.ManufacturerProfile, error)
	Create(ctx context.Context, dto manufacturers.CreateManufacturerProfileDTO) (*models.ManufacturerProfile, error)
}

// ServiceParams groups dependencies for the profiles service.
type ServiceParams struct {
	StartupRepo      startupRepository
	InvestorRepo     investorRepository
	ManufacturerRepo manufacturerRepository
}

type service struct {
	startups      startupRepository
	investors     investorRepository
	manufacturers manufacturerRepository
}

// NewService builds a profiles service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.StartupRepo == nil {
		return nil, fmt.Errorf("startup repository is required")
	}
	if params.InvestorRepo == nil {
		return nil, fmt.Errorf("investor repository is required")
	}
	if params.ManufacturerRepo == nil {
		return nil, fmt.Errorf("manufacturer repository is required")
	}
	return &service{
		startups:      params.StartupRepo,
		investors:     params.InvestorRepo,
		manufacturers: params.ManufacturerRepo,
	}, nil
}

// EnsureProfile returns the role profile id for the user, creating the row
// with placeholder values when missing. Admins carry no automatic profile.
func (s *service) EnsureProfile(ctx context.Context, user *models.User) (*uuid.UUID, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user is required")
	}

	switch user.Role {
	case enums.RoleStartup:
		return s.ensureStartup(ctx, user.ID)
	case enums.RoleInvestor:
		return s.ensureInvestor(ctx, user.ID)
	case enums.RoleManufacturer:
		return s.ensureManufacturer(ctx, user.ID)
	case enums.RoleAdmin:
		return nil, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown role %q", user.Role))
	}
}

func (s *service) ensureStartup(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	existing, err := s.startups.FindByFounderID(ctx, userID)
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup profile")
	}

	created, err := s.startups.Create(ctx, startups.CreateStartupDTO{FounderID: userID})
	if err != nil {
		// lost a create race, the winner's row is authoritative
		if retried, findErr := s.startups.FindByFounderID(ctx, userID); findErr == nil {
			return &retried.ID, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create startup profile")
	}
	return &created.ID, nil
}

func (s *service) ensureInvestor(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	existing, err := s.investors.FindByUserID(ctx, userID)
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load investor profile")
	}

	created, err := s.investors.Create(ctx, investors.CreateInvestorProfileDTO{UserID: userID})
	if err != nil {
		if retried, findErr := s.investors.FindByUserID(ctx, userID); findErr == nil {
			return &retried.ID, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create investor profile")
	}
	return &created.ID, nil
}

func (s *service) ensureManufacturer(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	existing, err := s.manufacturers.FindByUserID(ctx, userID)
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load manufacturer profile")
	}

	created, err := s.manufacturers.Create(ctx, manufacturers.CreateManufacturerProfileDTO{UserID: userID})
	if err != nil {
		if retried, findErr := s.manufacturers.FindByUserID(ctx, userID); findErr == nil {
			return &retried.ID, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create manufacturer profile")
	}
	return &created.ID, nil
}
