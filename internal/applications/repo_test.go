//go:build db
// +build db

package applications

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("VENTUREHUB_DB_DSN")
	if dsn == "" {
		t.Skip("VENTUREHUB_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

type applicationFixture struct {
	startup  *models.Startup
	investor *models.InvestorProfile
	username string
}

func createApplicationFixture(t *testing.T, tx *gorm.DB, startupName string) applicationFixture {
	t.Helper()

	founder := &models.User{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("vh_founder_%s", uuid.NewString()),
		Email:        fmt.Sprintf("vh_founder_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		Role:         enums.RoleStartup,
		IsActive:     true,
	}
	if err := tx.Create(founder).Error; err != nil {
		t.Fatalf("create founder: %v", err)
	}

	startup := &models.Startup{
		ID:        uuid.New(),
		FounderID: founder.ID,
		Name:      startupName,
		Niche:     "SpaceTech",
		Stage:     "SEED",
		Vision:    "v",
		Approved:  true,
	}
	if err := tx.Create(startup).Error; err != nil {
		t.Fatalf("create startup: %v", err)
	}

	username := fmt.Sprintf("vh_investor_%s", uuid.NewString())
	investorUser := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "hash",
		Role:         enums.RoleInvestor,
		IsActive:     true,
	}
	if err := tx.Create(investorUser).Error; err != nil {
		t.Fatalf("create investor user: %v", err)
	}

	investor := &models.InvestorProfile{
		ID:     uuid.New(),
		UserID: investorUser.ID,
	}
	if err := tx.Create(investor).Error; err != nil {
		t.Fatalf("create investor profile: %v", err)
	}

	return applicationFixture{startup: startup, investor: investor, username: username}
}

func TestRepositoryDeleteIfPendingGuardsStatus(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()
	fixture := createApplicationFixture(t, tx, "Delete Guard Startup")

	rows, err := repo.CreateBatch(ctx, []models.InvestmentApplication{{
		StartupID:  fixture.startup.ID,
		InvestorID: fixture.investor.ID,
		Subject:    "seed round",
		Message:    "m",
	}})
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	removed, err := repo.DeleteIfPending(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected pending row removed, got %d", removed)
	}

	rows, err = repo.CreateBatch(ctx, []models.InvestmentApplication{{
		StartupID:  fixture.startup.ID,
		InvestorID: fixture.investor.ID,
		Subject:    "seed round again",
		Message:    "m",
	}})
	if err != nil {
		t.Fatalf("recreate application: %v", err)
	}
	if err := repo.UpdateStatus(ctx, rows[0].ID, enums.ApplicationStatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	removed, err = repo.DeleteIfPending(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("delete accepted: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected accepted row to survive, got %d removed", removed)
	}
}

func TestRepositoryListAllSearchesStartupNameAndInvestorUsername(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	marker := uuid.NewString()
	fixture := createApplicationFixture(t, tx, fmt.Sprintf("Startup %s", marker))
	subject := fmt.Sprintf("subject %s", marker)
	if _, err := repo.CreateBatch(ctx, []models.InvestmentApplication{{
		StartupID:  fixture.startup.ID,
		InvestorID: fixture.investor.ID,
		Subject:    subject,
		Message:    "m",
	}}); err != nil {
		t.Fatalf("create application: %v", err)
	}

	byStartup, err := repo.ListAll(ctx, AdminFilter{Search: fixture.startup.Name}, "", 10)
	if err != nil {
		t.Fatalf("search by startup name: %v", err)
	}
	if len(byStartup.Items) != 1 {
		t.Fatalf("expected 1 match by startup name, got %d", len(byStartup.Items))
	}

	byUsername, err := repo.ListAll(ctx, AdminFilter{Search: fixture.username}, "", 10)
	if err != nil {
		t.Fatalf("search by investor username: %v", err)
	}
	if len(byUsername.Items) != 1 {
		t.Fatalf("expected 1 match by investor username, got %d", len(byUsername.Items))
	}

	bySubject, err := repo.ListAll(ctx, AdminFilter{Search: subject}, "", 10)
	if err != nil {
		t.Fatalf("search by subject: %v", err)
	}
	if len(bySubject.Items) != 0 {
		t.Fatalf("expected subject text to not match, got %d", len(bySubject.Items))
	}
}
