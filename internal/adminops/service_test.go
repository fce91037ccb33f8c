package adminops

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

type stubUserRepo struct {
	rows    map[uuid.UUID]*models.User
	deletes int
}

func newStubUserRepo(rows ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{rows: map[uuid.UUID]*models.User{}}
	for _, row := range rows {
		repo.rows[row.ID] = row
	}
	return repo
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if row, ok := r.rows[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, filter users.ListFilter, _ string, _ int) (users.UserPageDTO, error) {
	page := users.UserPageDTO{}
	for _, row := range r.rows {
		if row.Role == enums.RoleAdmin {
			continue
		}
		if filter.Role != "" && row.Role != filter.Role {
			continue
		}
		page.Items = append(page.Items, *users.FromModel(row))
	}
	return page, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role enums.Role) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *stubUserRepo) ListRecent(_ context.Context, _ int) ([]users.UserDTO, error) {
	return nil, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	r.deletes++
	return 1, nil
}

type stubStartupRepo struct {
	byFounder  map[uuid.UUID]*models.Startup
	approved   int64
	pending    int64
	lastFilter startups.ListFilter
	setCalls   map[uuid.UUID]bool
}

func newStubStartupRepo() *stubStartupRepo {
	return &stubStartupRepo{
		byFounder: map[uuid.UUID]*models.Startup{},
		setCalls:  map[uuid.UUID]bool{},
	}
}

func (r *stubStartupRepo) FindByFounderID(_ context.Context, founderID uuid.UUID) (*models.Startup, error) {
	if row, ok := r.byFounder[founderID]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStartupRepo) List(_ context.Context, filter startups.ListFilter, _ string, _ int) (startups.StartupPageDTO, error) {
	r.lastFilter = filter
	return startups.StartupPageDTO{}, nil
}

func (r *stubStartupRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	for _, row := range r.byFounder {
		if row.ID == id {
			r.setCalls[id] = approved
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubStartupRepo) CountByApproved(_ context.Context, approved bool) (int64, error) {
	if approved {
		return r.approved, nil
	}
	return r.pending, nil
}

func (r *stubStartupRepo) ListRecent(_ context.Context, _ int) ([]startups.StartupDTO, error) {
	return nil, nil
}

type stubInvestorRepo struct {
	byUser map[uuid.UUID]*models.InvestorProfile
}

func (r *stubInvestorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*models.InvestorProfile, error) {
	if row, ok := r.byUser[userID]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubManufacturerRepo struct {
	byUser map[uuid.UUID]*models.ManufacturerProfile
}

func (r *stubManufacturerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*models.ManufacturerProfile, error) {
	if row, ok := r.byUser[userID]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubApplicationRepo struct {
	pending    int64
	byInvestor map[uuid.UUID]int64
	byStartup  map[uuid.UUID]int64
}

func (r *stubApplicationRepo) ListAll(_ context.Context, _ applications.AdminFilter, _ string, _ int) (applications.ApplicationPageDTO, error) {
	return applications.ApplicationPageDTO{}, nil
}

func (r *stubApplicationRepo) CountByStatus(_ context.Context, status enums.ApplicationStatus) (int64, error) {
	if status == enums.ApplicationStatusPending {
		return r.pending, nil
	}
	return 0, nil
}

func (r *stubApplicationRepo) CountByStartup(_ context.Context, startupID uuid.UUID) (int64, error) {
	return r.byStartup[startupID], nil
}

func (r *stubApplicationRepo) CountByInvestor(_ context.Context, investorID uuid.UUID) (int64, error) {
	return r.byInvestor[investorID], nil
}

func (r *stubApplicationRepo) ListRecent(_ context.Context, _ int) ([]applications.ApplicationDTO, error) {
	return nil, nil
}

type stubConnectionRepo struct {
	pending        int64
	byManufacturer map[uuid.UUID]int64
	byStartup      map[uuid.UUID]int64
}

func (r *stubConnectionRepo) ListAll(_ context.Context, _ connections.AdminFilter, _ string, _ int) (connections.ConnectionPageDTO, error) {
	return connections.ConnectionPageDTO{}, nil
}

func (r *stubConnectionRepo) CountByStatus(_ context.Context, status enums.ConnectionStatus) (int64, error) {
	if status == enums.ConnectionStatusPending {
		return r.pending, nil
	}
	return 0, nil
}

func (r *stubConnectionRepo) CountByManufacturer(_ context.Context, manufacturerID uuid.UUID) (int64, error) {
	return r.byManufacturer[manufacturerID], nil
}

func (r *stubConnectionRepo) CountByStartup(_ context.Context, startupID uuid.UUID) (int64, error) {
	return r.byStartup[startupID], nil
}

type stubFavoriteRepo struct {
	byInvestor map[uuid.UUID]int64
}

func (r *stubFavoriteRepo) CountByInvestor(_ context.Context, investorID uuid.UUID) (int64, error) {
	return r.byInvestor[investorID], nil
}

type fixture struct {
	users         *stubUserRepo
	startups      *stubStartupRepo
	investors     *stubInvestorRepo
	manufacturers *stubManufacturerRepo
	applications  *stubApplicationRepo
	connections   *stubConnectionRepo
	favorites     *stubFavoriteRepo
	svc           Service
}

func newFixture(t *testing.T, accounts ...*models.User) *fixture {
	t.Helper()
	f := &fixture{
		users:         newStubUserRepo(accounts...),
		startups:      newStubStartupRepo(),
		investors:     &stubInvestorRepo{byUser: map[uuid.UUID]*models.InvestorProfile{}},
		manufacturers: &stubManufacturerRepo{byUser: map[uuid.UUID]*models.ManufacturerProfile{}},
		applications:  &stubApplicationRepo{byInvestor: map[uuid.UUID]int64{}, byStartup: map[uuid.UUID]int64{}},
		connections:   &stubConnectionRepo{byManufacturer: map[uuid.UUID]int64{}, byStartup: map[uuid.UUID]int64{}},
		favorites:     &stubFavoriteRepo{byInvestor: map[uuid.UUID]int64{}},
	}
	svc, err := NewService(ServiceParams{
		Users:         f.users,
		Startups:      f.startups,
		Investors:     f.investors,
		Manufacturers: f.manufacturers,
		Applications:  f.applications,
		Connections:   f.connections,
		Favorites:     f.favorites,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	f.svc = svc
	return f
}

func TestStatsAggregatesCounts(t *testing.T) {
	f := newFixture(t,
		&models.User{ID: uuid.New(), Role: enums.RoleStartup},
		&models.User{ID: uuid.New(), Role: enums.RoleInvestor},
		&models.User{ID: uuid.New(), Role: enums.RoleInvestor},
		&models.User{ID: uuid.New(), Role: enums.RoleAdmin},
	)
	f.startups.approved = 4
	f.startups.pending = 2
	f.applications.pending = 3
	f.connections.pending = 1

	stats, err := f.svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Users.Startups != 1 || stats.Users.Investors != 2 || stats.Users.Admins != 1 {
		t.Fatalf("unexpected user counts: %+v", stats.Users)
	}
	if stats.Startups.Approved != 4 || stats.Startups.Pending != 2 {
		t.Fatalf("unexpected startup counts: %+v", stats.Startups)
	}
	if stats.PendingApplications != 3 {
		t.Fatalf("expected 3 pending applications, got %d", stats.PendingApplications)
	}
	if stats.PendingConnections != 1 {
		t.Fatalf("expected 1 pending connection, got %d", stats.PendingConnections)
	}
}

func TestDeleteUserNeverRemovesAdmins(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Role: enums.RoleAdmin}
	investor := &models.User{ID: uuid.New(), Role: enums.RoleInvestor}
	f := newFixture(t, admin, investor)

	err := f.svc.DeleteUser(context.Background(), admin.ID)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for admin delete, got %v", err)
	}
	if f.users.deletes != 0 {
		t.Fatal("admin row must be retained")
	}

	if err := f.svc.DeleteUser(context.Background(), investor.ID); err != nil {
		t.Fatalf("delete investor: %v", err)
	}
	if f.users.deletes != 1 {
		t.Fatal("investor row must be removed")
	}

	err = f.svc.DeleteUser(context.Background(), uuid.New())
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for unknown user, got %v", err)
	}
}

func TestListUsersRejectsAdminFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListUsers(context.Background(), users.ListFilter{Role: enums.RoleAdmin}, "", 0)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for admin filter, got %v", err)
	}
}

func TestUserDetailIncludesInvestorFootprint(t *testing.T) {
	investor := &models.User{ID: uuid.New(), Role: enums.RoleInvestor, Username: "vc"}
	f := newFixture(t, investor)
	profile := &models.InvestorProfile{ID: uuid.New(), UserID: investor.ID}
	f.investors.byUser[investor.ID] = profile
	f.applications.byInvestor[profile.ID] = 7
	f.favorites.byInvestor[profile.ID] = 2

	detail, err := f.svc.UserDetail(context.Background(), investor.ID)
	if err != nil {
		t.Fatalf("user detail: %v", err)
	}
	if detail.InvestorProfile == nil || detail.InvestorProfile.ID != profile.ID {
		t.Fatal("expected investor profile in detail")
	}
	if detail.Related.Applications != 7 || detail.Related.Favorites != 2 {
		t.Fatalf("unexpected related counts: %+v", detail.Related)
	}
	if detail.StartupProfile != nil || detail.ManufacturerProfile != nil {
		t.Fatal("only the role profile may be populated")
	}
}

func TestModerateStartupsPassesApprovalFilter(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.ModerateStartups(context.Background(), startups.ApprovalPending, "ai", "", 0); err != nil {
		t.Fatalf("moderate: %v", err)
	}
	if f.startups.lastFilter.Approval != startups.ApprovalPending || f.startups.lastFilter.Search != "ai" {
		t.Fatalf("filter not forwarded: %+v", f.startups.lastFilter)
	}

	_, err := f.svc.ModerateStartups(context.Background(), "bogus", "", "", 0)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bogus filter, got %v", err)
	}
}

func TestSetStartupApprovalUnknownStartup(t *testing.T) {
	f := newFixture(t)

	err := f.svc.SetStartupApproval(context.Background(), uuid.New(), true)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
