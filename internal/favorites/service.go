package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
	"github.com/venturehub/venturehub-backend/pkg/metrics"
)

// ToggleResult reports the state after a toggle call.
type ToggleResult struct {
	StartupID uuid.UUID `json:"startup_id"`
	Favorited bool      `json:"favorited"`
}

// Service exposes the investor favorites workflow.
type Service interface {
	Toggle(ctx context.Context, investorID, startupID uuid.UUID) (*ToggleResult, error)
	List(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (startups.StartupPageDTO, error)
}

type repository interface {
	Insert(ctx context.Context, investorID, startupID uuid.UUID) (bool, error)
	Delete(ctx context.Context, investorID, startupID uuid.UUID) (int64, error)
	ListStartups(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (startups.StartupPageDTO, error)
}

type startupFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Startup, error)
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Repo        repository
	StartupRepo startupFinder
	Lifecycle   *metrics.LifecycleMetrics
}

type service struct {
	repo      repository
	startups  startupFinder
	lifecycle *metrics.LifecycleMetrics
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("favorites repository is required")
	}
	if params.StartupRepo == nil {
		return nil, fmt.Errorf("startups repository is required")
	}
	return &service{
		repo:      params.Repo,
		startups:  params.StartupRepo,
		lifecycle: params.Lifecycle,
	}, nil
}

// Toggle flips the favorite state for the pair: absent rows are created,
// present rows are removed. The result reports the state after the call.
func (s *service) Toggle(ctx context.Context, investorID, startupID uuid.UUID) (*ToggleResult, error) {
	if investorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "investor id is required")
	}
	if startupID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}

	startup, err := s.startups.FindByID(ctx, startupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "startup not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup")
	}
	if !startup.Approved {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "startup not found")
	}

	created, err := s.repo.Insert(ctx, investorID, startupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "favorite startup")
	}
	if created {
		s.lifecycle.IncTransition("favorite", "created")
		return &ToggleResult{StartupID: startupID, Favorited: true}, nil
	}

	if _, err := s.repo.Delete(ctx, investorID, startupID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "unfavorite startup")
	}
	s.lifecycle.IncTransition("favorite", "removed")
	return &ToggleResult{StartupID: startupID, Favorited: false}, nil
}

// List returns the investor's favorited startups.
func (s *service) List(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (startups.StartupPageDTO, error) {
	if investorID == uuid.Nil {
		return startups.StartupPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "investor id is required")
	}
	page, err := s.repo.ListStartups(ctx, investorID, cursor, limit)
	if err != nil {
		return startups.StartupPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	return page, nil
}
