package adminops

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

const recentLimit = 5

// Service exposes the admin console: dashboard stats, user management, and
// moderation listings.
type Service interface {
	Stats(ctx context.Context) (*DashboardStatsDTO, error)
	ListUsers(ctx context.Context, filter users.ListFilter, cursor string, limit int) (users.UserPageDTO, error)
	UserDetail(ctx context.Context, id uuid.UUID) (*UserDetailDTO, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ModerateStartups(ctx context.Context, approval startups.ApprovalFilter, search, cursor string, limit int) (startups.StartupPageDTO, error)
	SetStartupApproval(ctx context.Context, id uuid.UUID, approved bool) error
	ListApplications(ctx context.Context, filter applications.AdminFilter, cursor string, limit int) (applications.ApplicationPageDTO, error)
	ListConnections(ctx context.Context, filter connections.AdminFilter, cursor string, limit int) (connections.ConnectionPageDTO, error)
}

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter users.ListFilter, cursor string, limit int) (users.UserPageDTO, error)
	CountByRole(ctx context.Context, role enums.Role) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]users.UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type startupRepository interface {
	FindByFounderID(ctx context.Context, founderID uuid.UUID) (*models.Startup, error)
	List(ctx context.Context, filter startups.ListFilter, cursor string, limit int) (startups.StartupPageDTO, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	CountByApproved(ctx context.Context, approved bool) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]startups.StartupDTO, error)
}

type investorRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.InvestorProfile, error)
}

type manufacturerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.ManufacturerProfile, error)
}

type applicationRepository interface {
	ListAll(ctx context.Context, filter applications.AdminFilter, cursor string, limit int) (applications.ApplicationPageDTO, error)
	CountByStatus(ctx context.Context, status enums.ApplicationStatus) (int64, error)
	CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error)
	CountByInvestor(ctx context.Context, investorID uuid.UUID) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]applications.ApplicationDTO, error)
}

type connectionRepository interface {
	ListAll(ctx context.Context, filter connections.AdminFilter, cursor string, limit int) (connections.ConnectionPageDTO, error)
	CountByStatus(ctx context.Context, status enums.ConnectionStatus) (int64, error)
	CountByManufacturer(ctx context.Context, manufacturerID uuid.UUID) (int64, error)
	CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error)
}

type favoriteRepository interface {
	CountByInvestor(ctx context.Context, investorID uuid.UUID) (int64, error)
}

// ServiceParams groups the repositories the admin console reads from.
type ServiceParams struct {
	Users         userRepository
	Startups      startupRepository
	Investors     investorRepository
	Manufacturers manufacturerRepository
	Applications  applicationRepository
	Connections   connectionRepository
	Favorites     favoriteRepository
}

type service struct {
	users         userRepository
	startups      startupRepository
	investors     investorRepository
	manufacturers manufacturerRepository
	applications  applicationRepository
	connections   connectionRepository
	favorites     favoriteRepository
}

// NewService builds the admin console service.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.Startups == nil {
		return nil, fmt.Errorf("startups repository is required")
	}
	if params.Investors == nil {
		return nil, fmt.Errorf("investors repository is required")
	}
	if params.Manufacturers == nil {
		return nil, fmt.Errorf("manufacturers repository is required")
	}
	if params.Applications == nil {
		return nil, fmt.Errorf("applications repository is required")
	}
	if params.Connections == nil {
		return nil, fmt.Errorf("connections repository is required")
	}
	if params.Favorites == nil {
		return nil, fmt.Errorf("favorites repository is required")
	}
	return &service{
		users:         params.Users,
		startups:      params.Startups,
		investors:     params.Investors,
		manufacturers: params.Manufacturers,
		applications:  params.Applications,
		connections:   params.Connections,
		favorites:     params.Favorites,
	}, nil
}

// Stats assembles the dashboard summary.
func (s *service) Stats(ctx context.Context) (*DashboardStatsDTO, error) {
	stats := &DashboardStatsDTO{}

	roleCounts := []struct {
		role enums.Role
		dest *int64
	}{
		{enums.RoleStartup, &stats.Users.Startups},
		{enums.RoleInvestor, &stats.Users.Investors},
		{enums.RoleManufacturer, &stats.Users.Manufacturers},
		{enums.RoleAdmin, &stats.Users.Admins},
	}
	for _, rc := range roleCounts {
		count, err := s.users.CountByRole(ctx, rc.role)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count users")
		}
		*rc.dest = count
	}

	approved, err := s.startups.CountByApproved(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count startups")
	}
	pending, err := s.startups.CountByApproved(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count startups")
	}
	stats.Startups = StartupCounts{Approved: approved, Pending: pending}

	if stats.PendingApplications, err = s.applications.CountByStatus(ctx, enums.ApplicationStatusPending); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count applications")
	}
	if stats.PendingConnections, err = s.connections.CountByStatus(ctx, enums.ConnectionStatusPending); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count connections")
	}

	if stats.Recent.Users, err = s.users.ListRecent(ctx, recentLimit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent users")
	}
	if stats.Recent.Startups, err = s.startups.ListRecent(ctx, recentLimit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent startups")
	}
	if stats.Recent.Applications, err = s.applications.ListRecent(ctx, recentLimit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent applications")
	}
	return stats, nil
}

// ListUsers pages through non-admin accounts.
func (s *service) ListUsers(ctx context.Context, filter users.ListFilter, cursor string, limit int) (users.UserPageDTO, error) {
	if filter.Role == enums.RoleAdmin {
		return users.UserPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "admin accounts are not listable")
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return users.UserPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown role filter")
	}
	page, err := s.users.List(ctx, filter, cursor, limit)
	if err != nil {
		return users.UserPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return page, nil
}

// UserDetail loads the account, its role profile, and its activity counts.
func (s *service) UserDetail(ctx context.Context, id uuid.UUID) (*UserDetailDTO, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &UserDetailDTO{User: *users.FromModel(user)}
	switch user.Role {
	case enums.RoleStartup:
		startup, err := s.startups.FindByFounderID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load startup profile")
		}
		if startup != nil {
			detail.StartupProfile = startups.FromModel(startup)
			if detail.Related.Applications, err = s.applications.CountByStartup(ctx, startup.ID); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count applications")
			}
			if detail.Related.Connections, err = s.connections.CountByStartup(ctx, startup.ID); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count connections")
			}
		}
	case enums.RoleInvestor:
		profile, err := s.investors.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load investor profile")
		}
		if profile != nil {
			detail.InvestorProfile = investors.FromModel(profile)
			if detail.Related.Applications, err = s.applications.CountByInvestor(ctx, profile.ID); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count applications")
			}
			if detail.Related.Favorites, err = s.favorites.CountByInvestor(ctx, profile.ID); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count favorites")
			}
		}
	case enums.RoleManufacturer:
		profile, err := s.manufacturers.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load manufacturer profile")
		}
		if profile != nil {
			detail.ManufacturerProfile = manufacturers.FromModel(profile)
			if detail.Related.Connections, err = s.connections.CountByManufacturer(ctx, profile.ID); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count connections")
			}
		}
	}
	return detail, nil
}

// DeleteUser removes a non-admin account. Profiles, applications,
// connections, favorites, and messages go with it via FK cascade.
func (s *service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "admin accounts cannot be deleted")
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

// ModerateStartups pages through startups for the moderation queue.
func (s *service) ModerateStartups(ctx context.Context, approval startups.ApprovalFilter, search, cursor string, limit int) (startups.StartupPageDTO, error) {
	switch approval {
	case startups.ApprovalAll, startups.ApprovalPending, startups.ApprovalApproved, "":
	default:
		return startups.StartupPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown approval filter")
	}
	page, err := s.startups.List(ctx, startups.ListFilter{Approval: approval, Search: search}, cursor, limit)
	if err != nil {
		return startups.StartupPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list startups")
	}
	return page, nil
}

// SetStartupApproval flips the moderation flag.
func (s *service) SetStartupApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "startup id is required")
	}
	if err := s.startups.SetApproved(ctx, id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "startup not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update startup approval")
	}
	return nil
}

// ListApplications pages through all applications with status/search filters.
func (s *service) ListApplications(ctx context.Context, filter applications.AdminFilter, cursor string, limit int) (applications.ApplicationPageDTO, error) {
	page, err := s.applications.ListAll(ctx, filter, cursor, limit)
	if err != nil {
		return applications.ApplicationPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list applications")
	}
	return page, nil
}

// ListConnections pages through all connection requests with filters.
func (s *service) ListConnections(ctx context.Context, filter connections.AdminFilter, cursor string, limit int) (connections.ConnectionPageDTO, error) {
	page, err := s.connections.ListAll(ctx, filter, cursor, limit)
	if err != nil {
		return connections.ConnectionPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list connections")
	}
	return page, nil
}

func (s *service) loadUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}
