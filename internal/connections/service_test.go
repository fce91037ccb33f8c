package connections

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

type pairKey struct {
	manufacturerID uuid.UUID
	startupID      uuid.UUID
}

type stubRepo struct {
	rows    map[uuid.UUID]*models.ConnectionRequest
	byPair  map[pairKey]uuid.UUID
	creates int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		rows:   map[uuid.UUID]*models.ConnectionRequest{},
		byPair: map[pairKey]uuid.UUID{},
	}
}

func (r *stubRepo) GetOrCreate(_ context.Context, manufacturerID, startupID uuid.UUID, message string) (*models.ConnectionRequest, bool, error) {
	key := pairKey{manufacturerID, startupID}
	if id, ok := r.byPair[key]; ok {
		copied := *r.rows[id]
		return &copied, false, nil
	}
	r.creates++
	row := &models.ConnectionRequest{
		ID:             uuid.New(),
		ManufacturerID: manufacturerID,
		StartupID:      startupID,
		Message:        message,
		Status:         enums.ConnectionStatusPending,
	}
	r.rows[row.ID] = row
	r.byPair[key] = row.ID
	copied := *row
	return &copied, true, nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.ConnectionRequest, error) {
	if row, ok := r.rows[id]; ok {
		copied := *row
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) UpdateStatusIf(_ context.Context, id uuid.UUID, from, to enums.ConnectionStatus) (int64, error) {
	row, ok := r.rows[id]
	if !ok || row.Status != from {
		return 0, nil
	}
	row.Status = to
	return 1, nil
}

func (r *stubRepo) ListByManufacturer(_ context.Context, manufacturerID uuid.UUID, _ string, _ int) (ConnectionPageDTO, error) {
	page := ConnectionPageDTO{}
	for _, row := range r.rows {
		if row.ManufacturerID == manufacturerID {
			page.Items = append(page.Items, *FromModel(row))
		}
	}
	return page, nil
}

func (r *stubRepo) ListByStartup(_ context.Context, startupID uuid.UUID, _ string, _ int) (ConnectionPageDTO, error) {
	page := ConnectionPageDTO{}
	for _, row := range r.rows {
		if row.StartupID == startupID {
			page.Items = append(page.Items, *FromModel(row))
		}
	}
	return page, nil
}

type stubStartupFinder struct {
	rows map[uuid.UUID]*models.Startup
}

func (f *stubStartupFinder) FindByID(_ context.Context, id uuid.UUID) (*models.Startup, error) {
	if row, ok := f.rows[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newFixture(t *testing.T, repo *stubRepo, startups ...*models.Startup) Service {
	t.Helper()
	finder := &stubStartupFinder{rows: map[uuid.UUID]*models.Startup{}}
	for _, startup := range startups {
		finder.rows[startup.ID] = startup
	}
	svc, err := NewService(ServiceParams{Repo: repo, StartupRepo: finder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestConnectRepeatIsNoOp(t *testing.T) {
	repo := newStubRepo()
	startup := &models.Startup{ID: uuid.New(), Approved: true}
	svc := newFixture(t, repo, startup)
	manufacturerID := uuid.New()

	first, err := svc.Connect(context.Background(), manufacturerID, ConnectRequest{StartupID: startup.ID, Message: "hello"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if first.AlreadyRequested {
		t.Fatal("first connect must not report already requested")
	}

	second, err := svc.Connect(context.Background(), manufacturerID, ConnectRequest{StartupID: startup.ID, Message: "again"})
	if err != nil {
		t.Fatalf("repeat connect: %v", err)
	}
	if !second.AlreadyRequested {
		t.Fatal("repeat connect must report already requested")
	}
	if second.Request.ID != first.Request.ID {
		t.Fatal("repeat connect must return the original row")
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one created row, got %d", repo.creates)
	}
}

func TestConnectHidesUnapprovedStartups(t *testing.T) {
	repo := newStubRepo()
	pending := &models.Startup{ID: uuid.New(), Approved: false}
	svc := newFixture(t, repo, pending)

	_, err := svc.Connect(context.Background(), uuid.New(), ConnectRequest{StartupID: pending.ID})
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for unapproved startup, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatal("no row may be created for an unapproved startup")
	}
}

func TestAcceptRejectRequirePending(t *testing.T) {
	repo := newStubRepo()
	startup := &models.Startup{ID: uuid.New(), Approved: true}
	svc := newFixture(t, repo, startup)

	result, err := svc.Connect(context.Background(), uuid.New(), ConnectRequest{StartupID: startup.ID})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	id := result.Request.ID

	accepted, err := svc.Accept(context.Background(), startup.ID, id)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != enums.ConnectionStatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", accepted.Status)
	}

	_, err = svc.Reject(context.Background(), startup.ID, id)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("reject after accept must conflict, got %v", err)
	}
}

func TestUnfriendOnlyFromAccepted(t *testing.T) {
	repo := newStubRepo()
	startup := &models.Startup{ID: uuid.New(), Approved: true}
	svc := newFixture(t, repo, startup)

	result, err := svc.Connect(context.Background(), uuid.New(), ConnectRequest{StartupID: startup.ID})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	id := result.Request.ID

	// still PENDING
	_, err = svc.Unfriend(context.Background(), startup.ID, id)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unfriend of pending must conflict, got %v", err)
	}
	if repo.rows[id].Status != enums.ConnectionStatusPending {
		t.Fatal("status must be unchanged after failed unfriend")
	}

	if _, err := svc.Accept(context.Background(), startup.ID, id); err != nil {
		t.Fatalf("accept: %v", err)
	}
	severed, err := svc.Unfriend(context.Background(), startup.ID, id)
	if err != nil {
		t.Fatalf("unfriend: %v", err)
	}
	if severed.Status != enums.ConnectionStatusRejected {
		t.Fatalf("expected REJECTED after unfriend, got %s", severed.Status)
	}

	// REJECTED is terminal
	_, err = svc.Unfriend(context.Background(), startup.ID, id)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("second unfriend must conflict, got %v", err)
	}
}

func TestTransitionsAreStartupScoped(t *testing.T) {
	repo := newStubRepo()
	startup := &models.Startup{ID: uuid.New(), Approved: true}
	svc := newFixture(t, repo, startup)

	result, err := svc.Connect(context.Background(), uuid.New(), ConnectRequest{StartupID: startup.ID})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	_, err = svc.Accept(context.Background(), uuid.New(), result.Request.ID)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("foreign startup must get not-found, got %v", err)
	}
}
