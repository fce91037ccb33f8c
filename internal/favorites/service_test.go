package favorites

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

type pairKey struct {
	investorID uuid.UUID
	startupID  uuid.UUID
}

type stubRepo struct {
	pairs map[pairKey]struct{}
}

func newStubRepo() *stubRepo {
	return &stubRepo{pairs: map[pairKey]struct{}{}}
}

func (r *stubRepo) Insert(_ context.Context, investorID, startupID uuid.UUID) (bool, error) {
	key := pairKey{investorID, startupID}
	if _, ok := r.pairs[key]; ok {
		return false, nil
	}
	r.pairs[key] = struct{}{}
	return true, nil
}

func (r *stubRepo) Delete(_ context.Context, investorID, startupID uuid.UUID) (int64, error) {
	key := pairKey{investorID, startupID}
	if _, ok := r.pairs[key]; !ok {
		return 0, nil
	}
	delete(r.pairs, key)
	return 1, nil
}

func (r *stubRepo) ListStartups(_ context.Context, investorID uuid.UUID, _ string, _ int) (startups.StartupPageDTO, error) {
	page := startups.StartupPageDTO{}
	for key := range r.pairs {
		if key.investorID == investorID {
			page.Items = append(page.Items, startups.StartupDTO{ID: key.startupID})
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

func newFixture(t *testing.T, repo *stubRepo, rows ...*models.Startup) Service {
	t.Helper()
	finder := &stubStartupFinder{rows: map[uuid.UUID]*models.Startup{}}
	for _, row := range rows {
		finder.rows[row.ID] = row
	}
	svc, err := NewService(ServiceParams{Repo: repo, StartupRepo: finder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestToggleFlipsState(t *testing.T) {
	repo := newStubRepo()
	startup := &models.Startup{ID: uuid.New(), Approved: true}
	svc := newFixture(t, repo, startup)
	investorID := uuid.New()

	first, err := svc.Toggle(context.Background(), investorID, startup.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Favorited {
		t.Fatal("first toggle must favorite")
	}

	second, err := svc.Toggle(context.Background(), investorID, startup.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Favorited {
		t.Fatal("second toggle must unfavorite")
	}
	if len(repo.pairs) != 0 {
		t.Fatal("even toggle count must leave no row")
	}

	third, err := svc.Toggle(context.Background(), investorID, startup.ID)
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if !third.Favorited {
		t.Fatal("odd toggle count must leave the startup favorited")
	}
	if len(repo.pairs) != 1 {
		t.Fatalf("expected one row after odd toggles, got %d", len(repo.pairs))
	}
}

func TestToggleRejectsUnknownOrUnapproved(t *testing.T) {
	repo := newStubRepo()
	pending := &models.Startup{ID: uuid.New(), Approved: false}
	svc := newFixture(t, repo, pending)

	_, err := svc.Toggle(context.Background(), uuid.New(), pending.ID)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for unapproved startup, got %v", err)
	}

	_, err = svc.Toggle(context.Background(), uuid.New(), uuid.New())
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found for unknown startup, got %v", err)
	}
	if len(repo.pairs) != 0 {
		t.Fatal("failed toggles must not write rows")
	}
}
