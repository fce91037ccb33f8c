package connections

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
	"github.com/venturehub/venturehub-backend/pkg/metrics"
)

// Service exposes the manufacturer-startup connection workflow. One row per
// pair; REJECTED is terminal.
type Service interface {
	Connect(ctx context.Context, manufacturerID uuid.UUID, req ConnectRequest) (*ConnectResult, error)
	ListForManufacturer(ctx context.Context, manufacturerID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error)
	ListForStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error)
	Accept(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error)
	Reject(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error)
	Unfriend(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error)
}

type repository interface {
	GetOrCreate(ctx context.Context, manufacturerID, startupID uuid.UUID, message string) (*models.ConnectionRequest, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ConnectionRequest, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to enums.ConnectionStatus) (int64, error)
	ListByManufacturer(ctx context.Context, manufacturerID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error)
	ListByStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error)
}

type startupFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Startup, error)
}

// ServiceParams groups dependencies for the connections service.
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

// NewService builds a connections service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("connections repository is required")
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

// Connect requests a connection with an approved startup. A repeat call for
// the same pair is a no-op reporting already_requested.
func (s *service) Connect(ctx context.Context, manufacturerID uuid.UUID, req ConnectRequest) (*ConnectResult, error) {
	if manufacturerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "manufacturer id is required")
	}
	if req.StartupID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}

	startup, err := s.startups.FindByID(ctx, req.StartupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "startup not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup")
	}
	if !startup.Approved {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "startup not found")
	}

	row, created, err := s.repo.GetOrCreate(ctx, manufacturerID, req.StartupID, req.Message)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create connection request")
	}
	if created {
		s.lifecycle.IncTransition("connection", enums.ConnectionStatusPending.String())
	}

	return &ConnectResult{
		Request:          *FromModel(row),
		AlreadyRequested: !created,
	}, nil
}

// ListForManufacturer returns the manufacturer's connection history.
func (s *service) ListForManufacturer(ctx context.Context, manufacturerID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error) {
	if manufacturerID == uuid.Nil {
		return ConnectionPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "manufacturer id is required")
	}
	page, err := s.repo.ListByManufacturer(ctx, manufacturerID, cursor, limit)
	if err != nil {
		return ConnectionPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list connections")
	}
	return page, nil
}

// ListForStartup returns the startup's incoming requests.
func (s *service) ListForStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ConnectionPageDTO, error) {
	if startupID == uuid.Nil {
		return ConnectionPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}
	page, err := s.repo.ListByStartup(ctx, startupID, cursor, limit)
	if err != nil {
		return ConnectionPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list connections")
	}
	return page, nil
}

// Accept transitions a PENDING request to ACCEPTED.
func (s *service) Accept(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error) {
	return s.transition(ctx, startupID, id, enums.ConnectionStatusPending, enums.ConnectionStatusAccepted,
		"only pending requests can be accepted")
}

// Reject transitions a PENDING request to REJECTED.
func (s *service) Reject(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error) {
	return s.transition(ctx, startupID, id, enums.ConnectionStatusPending, enums.ConnectionStatusRejected,
		"only pending requests can be rejected")
}

// Unfriend severs an ACCEPTED connection, leaving it REJECTED. Any other
// current status is a state conflict and the row is unchanged.
func (s *service) Unfriend(ctx context.Context, startupID, id uuid.UUID) (*ConnectionDTO, error) {
	return s.transition(ctx, startupID, id, enums.ConnectionStatusAccepted, enums.ConnectionStatusRejected,
		"only accepted connections can be severed")
}

func (s *service) transition(ctx context.Context, startupID, id uuid.UUID, from, to enums.ConnectionStatus, conflictMessage string) (*ConnectionDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.StartupID != startupID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "connection request not found")
	}

	changed, err := s.repo.UpdateStatusIf(ctx, id, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update connection status")
	}
	if changed == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, conflictMessage)
	}
	s.lifecycle.IncTransition("connection", to.String())

	row.Status = to
	return FromModel(row), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.ConnectionRequest, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "connection id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "connection request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load connection request")
	}
	return row, nil
}
