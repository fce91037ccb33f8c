package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/config"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
	"github.com/venturehub/venturehub-backend/pkg/security"
)

type stubUserRepo struct {
	byUsername map[string]*models.User
	lastLogin  map[uuid.UUID]time.Time
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if user, ok := r.byUsername[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if r.lastLogin == nil {
		r.lastLogin = map[uuid.UUID]time.Time{}
	}
	r.lastLogin[id] = at
	return nil
}

type stubProfiles struct {
	profileID uuid.UUID
	calls     int
}

func (p *stubProfiles) EnsureProfile(_ context.Context, user *models.User) (*uuid.UUID, error) {
	p.calls++
	if user.Role == enums.RoleAdmin {
		return nil, nil
	}
	return &p.profileID, nil
}

type stubSessions struct {
	lastAccessID string
}

func (s *stubSessions) Generate(_ context.Context, accessID string) (string, error) {
	s.lastAccessID = accessID
	return "refresh-" + accessID, nil
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func newLoginFixture(t *testing.T, user *models.User) (Service, *stubUserRepo, *stubProfiles, *stubSessions) {
	t.Helper()
	repo := &stubUserRepo{byUsername: map[string]*models.User{}}
	if user != nil {
		repo.byUsername[user.Username] = user
	}
	profilesSvc := &stubProfiles{profileID: uuid.New()}
	sessions := &stubSessions{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		Profiles:       profilesSvc,
		SessionManager: sessions,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "venturehub",
			ExpirationMinutes: 15,
		},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, profilesSvc, sessions
}

func TestLoginSuccessEnsuresProfile(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "ada",
		Role:         enums.RoleInvestor,
		IsActive:     true,
		PasswordHash: mustHashPassword(t, "correct-horse-battery"),
	}
	svc, repo, profilesSvc, sessions := newLoginFixture(t, user)

	result, err := svc.Login(context.Background(), enums.RoleInvestor, LoginRequest{
		Username: "ada",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("expected tokens in response")
	}
	if result.ProfileID == nil || *result.ProfileID != profilesSvc.profileID {
		t.Fatalf("profile id mismatch: %v", result.ProfileID)
	}
	if profilesSvc.calls != 1 {
		t.Fatalf("expected one EnsureProfile call, got %d", profilesSvc.calls)
	}
	if _, ok := repo.lastLogin[user.ID]; !ok {
		t.Fatal("last login not recorded")
	}
	if sessions.lastAccessID == "" {
		t.Fatal("session not generated")
	}
}

func TestLoginRejectsWrongRole(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "ada",
		Role:         enums.RoleInvestor,
		IsActive:     true,
		PasswordHash: mustHashPassword(t, "correct-horse-battery"),
	}
	svc, _, profilesSvc, _ := newLoginFixture(t, user)

	_, err := svc.Login(context.Background(), enums.RoleStartup, LoginRequest{
		Username: "ada",
		Password: "correct-horse-battery",
	})
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(coded.Message(), "not registered as a startup") {
		t.Fatalf("unexpected message: %s", coded.Message())
	}
	if profilesSvc.calls != 0 {
		t.Fatal("profile must not be ensured for a wrong-role login")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "ada",
		Role:         enums.RoleInvestor,
		IsActive:     true,
		PasswordHash: mustHashPassword(t, "correct-horse-battery"),
	}
	svc, _, _, _ := newLoginFixture(t, user)

	cases := []LoginRequest{
		{Username: "ada", Password: "wrong"},
		{Username: "nobody", Password: "correct-horse-battery"},
		{Username: "   ", Password: "correct-horse-battery"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), enums.RoleInvestor, req)
		coded := pkgerrors.As(err)
		if coded == nil || coded.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("request %+v: expected unauthorized, got %v", req, err)
		}
		if coded.Message() != invalidCredentialsMessage {
			t.Fatalf("credential failures must share one message, got %q", coded.Message())
		}
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "ada",
		Role:         enums.RoleInvestor,
		IsActive:     false,
		PasswordHash: mustHashPassword(t, "correct-horse-battery"),
	}
	svc, _, _, _ := newLoginFixture(t, user)

	_, err := svc.Login(context.Background(), enums.RoleInvestor, LoginRequest{
		Username: "ada",
		Password: "correct-horse-battery",
	})
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for inactive user, got %v", err)
	}
}
