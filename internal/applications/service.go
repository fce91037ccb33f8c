package applications

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

// Service exposes the investment application workflow. Startups create and
// withdraw applications; investors decide on them.
type Service interface {
	Apply(ctx context.Context, startupID uuid.UUID, req ApplyRequest) ([]ApplicationDTO, error)
	ListForStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error)
	ListForInvestor(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error)
	Detail(ctx context.Context, actor Actor, id uuid.UUID) (*ApplicationDTO, error)
	Delete(ctx context.Context, startupID, id uuid.UUID) error
	Decide(ctx context.Context, investorID, id uuid.UUID, req DecisionRequest) (*ApplicationDTO, error)
}

// Actor identifies the requesting profile for visibility decisions.
type Actor struct {
	ProfileID uuid.UUID
	Role      enums.Role
}

type repository interface {
	CreateBatch(ctx context.Context, rows []models.InvestmentApplication) ([]models.InvestmentApplication, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.InvestmentApplication, error)
	DeleteIfPending(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ApplicationStatus) error
	ListByStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error)
}

type investorFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.InvestorProfile, error)
}

// ServiceParams groups dependencies for the applications service.
type ServiceParams struct {
	Repo         repository
	InvestorRepo investorFinder
	Lifecycle    *metrics.LifecycleMetrics
}

type service struct {
	repo      repository
	investors investorFinder
	lifecycle *metrics.LifecycleMetrics
}

// NewService builds an applications service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("applications repository is required")
	}
	if params.InvestorRepo == nil {
		return nil, fmt.Errorf("investor repository is required")
	}
	return &service{
		repo:      params.Repo,
		investors: params.InvestorRepo,
		lifecycle: params.Lifecycle,
	}, nil
}

// Apply writes one PENDING application per recipient investor. Every
// recipient must exist before any row is written.
func (s *service) Apply(ctx context.Context, startupID uuid.UUID, req ApplyRequest) ([]ApplicationDTO, error) {
	if startupID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}
	if len(req.InvestorIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one investor is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(req.InvestorIDs))
	recipients := make([]uuid.UUID, 0, len(req.InvestorIDs))
	for _, investorID := range req.InvestorIDs {
		if investorID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "investor id is required")
		}
		if _, dup := seen[investorID]; dup {
			continue
		}
		seen[investorID] = struct{}{}
		if _, err := s.investors.FindByID(ctx, investorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("investor %s not found", investorID))
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load investor")
		}
		recipients = append(recipients, investorID)
	}

	rows := make([]models.InvestmentApplication, 0, len(recipients))
	for _, investorID := range recipients {
		rows = append(rows, models.InvestmentApplication{
			StartupID:       startupID,
			InvestorID:      investorID,
			Subject:         req.Subject,
			Message:         req.Message,
			AmountRequested: req.AmountRequested,
			EquityOffered:   req.EquityOffered,
			Status:          enums.ApplicationStatusPending,
		})
	}

	created, err := s.repo.CreateBatch(ctx, rows)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create applications")
	}

	out := make([]ApplicationDTO, 0, len(created))
	for i := range created {
		s.lifecycle.IncTransition("application", enums.ApplicationStatusPending.String())
		out = append(out, *FromModel(&created[i]))
	}
	return out, nil
}

// ListForStartup returns the startup's own applications.
func (s *service) ListForStartup(ctx context.Context, startupID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error) {
	if startupID == uuid.Nil {
		return ApplicationPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}
	page, err := s.repo.ListByStartup(ctx, startupID, cursor, limit)
	if err != nil {
		return ApplicationPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list applications")
	}
	return page, nil
}

// ListForInvestor returns the applications addressed to the investor.
func (s *service) ListForInvestor(ctx context.Context, investorID uuid.UUID, cursor string, limit int) (ApplicationPageDTO, error) {
	if investorID == uuid.Nil {
		return ApplicationPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "investor id is required")
	}
	page, err := s.repo.ListByInvestor(ctx, investorID, cursor, limit)
	if err != nil {
		return ApplicationPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list applications")
	}
	return page, nil
}

// Detail returns one application, visible only to its startup, its investor,
// or an admin.
func (s *service) Detail(ctx context.Context, actor Actor, id uuid.UUID) (*ApplicationDTO, error) {
	application, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorCanSee(actor, application) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
	}
	return FromModel(application), nil
}

// Delete withdraws the startup's application while it is still PENDING. Any
// decided application is retained and the call fails with a state conflict.
func (s *service) Delete(ctx context.Context, startupID, id uuid.UUID) error {
	application, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if application.StartupID != startupID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
	}

	removed, err := s.repo.DeleteIfPending(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete application")
	}
	if removed == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only pending applications can be deleted")
	}
	s.lifecycle.IncTransition("application", "deleted")
	return nil
}

// Decide sets the status on an application addressed to the investor.
func (s *service) Decide(ctx context.Context, investorID, id uuid.UUID, req DecisionRequest) (*ApplicationDTO, error) {
	if !req.Status.IsDecision() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid decision %q", req.Status))
	}

	application, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.InvestorID != investorID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update status")
	}
	s.lifecycle.IncTransition("application", req.Status.String())

	application.Status = req.Status
	return FromModel(application), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.InvestmentApplication, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "application id is required")
	}
	application, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "application not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load application")
	}
	return application, nil
}

func actorCanSee(actor Actor, application *models.InvestmentApplication) bool {
	switch actor.Role {
	case enums.RoleAdmin:
		return true
	case enums.RoleStartup:
		return application.StartupID == actor.ProfileID
	case enums.RoleInvestor:
		return application.InvestorID == actor.ProfileID
	}
	return false
}
