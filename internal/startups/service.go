package startups

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

// Service exposes business rules for the startup directory.
type Service interface {
	Browse(ctx context.Context, filter BrowseFilter, cursor string, limit int) (StartupPageDTO, error)
	Detail(ctx context.Context, viewer Viewer, id uuid.UUID) (*StartupDTO, error)
	MyStartup(ctx context.Context, founderID uuid.UUID) (*StartupDTO, error)
	UpdateProfile(ctx context.Context, founderID uuid.UUID, dto UpdateStartupDTO) (*StartupDTO, error)
}

// BrowseFilter is the directory query surface exposed to investors and
// manufacturers. Approval gating is applied by the service, not the caller.
type BrowseFilter struct {
	Search string
	Niche  string
	Stage  string
}

// Viewer identifies the requesting user for visibility decisions.
type Viewer struct {
	UserID uuid.UUID
	Role   enums.Role
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Startup, error)
	FindByFounderID(ctx context.Context, founderID uuid.UUID) (*models.Startup, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Startup, error)
	List(ctx context.Context, filter ListFilter, cursor string, limit int) (StartupPageDTO, error)
}

// ServiceParams groups dependencies for the startups service.
type ServiceParams struct {
	Repo repository
}

type service struct {
	repo repository
}

// NewService builds a startups service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("startups repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// Browse lists approved startups only, regardless of the filter inputs.
func (s *service) Browse(ctx context.Context, filter BrowseFilter, cursor string, limit int) (StartupPageDTO, error) {
	page, err := s.repo.List(ctx, ListFilter{
		Search:       filter.Search,
		Niche:        filter.Niche,
		Stage:        filter.Stage,
		ApprovedOnly: true,
	}, cursor, limit)
	if err != nil {
		return StartupPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list startups")
	}
	return page, nil
}

// Detail returns one startup. Unapproved rows are visible only to the
// founder and admins; everyone else gets not-found.
func (s *service) Detail(ctx context.Context, viewer Viewer, id uuid.UUID) (*StartupDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}
	startup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "startup not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup")
	}
	if !startup.Approved && viewer.Role != enums.RoleAdmin && startup.FounderID != viewer.UserID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "startup not found")
	}
	return FromModel(startup), nil
}

// MyStartup loads the founder's own row, approved or not.
func (s *service) MyStartup(ctx context.Context, founderID uuid.UUID) (*StartupDTO, error) {
	startup, err := s.findOwned(ctx, founderID)
	if err != nil {
		return nil, err
	}
	return FromModel(startup), nil
}

// UpdateProfile applies founder edits to their own startup.
func (s *service) UpdateProfile(ctx context.Context, founderID uuid.UUID, dto UpdateStartupDTO) (*StartupDTO, error) {
	startup, err := s.findOwned(ctx, founderID)
	if err != nil {
		return nil, err
	}

	updates := dto.columns()
	if len(updates) == 0 {
		return FromModel(startup), nil
	}

	updated, err := s.repo.Update(ctx, startup.ID, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update startup")
	}
	return FromModel(updated), nil
}

func (s *service) findOwned(ctx context.Context, founderID uuid.UUID) (*models.Startup, error) {
	if founderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "founder id is required")
	}
	startup, err := s.repo.FindByFounderID(ctx, founderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "startup profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup")
	}
	return startup, nil
}
