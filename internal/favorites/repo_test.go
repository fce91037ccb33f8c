//go:build db
// +build db

package favorites

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

func createTestUser(t *testing.T, tx *gorm.DB, role enums.Role) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("vh_test_%s", uuid.NewString()),
		Email:        fmt.Sprintf("vh_test_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		Role:         role,
		IsActive:     true,
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestRepositoryToggleRoundTrip(t *testing.T) {
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

	investorUser := createTestUser(t, tx, enums.RoleInvestor)
	investor := &models.InvestorProfile{
		ID:     uuid.New(),
		UserID: investorUser.ID,
	}
	if err := tx.Create(investor).Error; err != nil {
		t.Fatalf("create investor profile: %v", err)
	}

	founder := createTestUser(t, tx, enums.RoleStartup)
	startup := &models.Startup{
		ID:        uuid.New(),
		FounderID: founder.ID,
		Name:      "Favorite Target",
		Niche:     "AgTech",
		Stage:     "SEED",
		Vision:    "v",
		Approved:  true,
	}
	if err := tx.Create(startup).Error; err != nil {
		t.Fatalf("create startup: %v", err)
	}

	created, err := repo.Insert(ctx, investor.ID, startup.ID)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !created {
		t.Fatal("expected first insert to create the row")
	}

	created, err = repo.Insert(ctx, investor.ID, startup.ID)
	if err != nil {
		t.Fatalf("repeat insert: %v", err)
	}
	if created {
		t.Fatal("expected duplicate insert to be swallowed")
	}

	count, err := repo.CountByInvestor(ctx, investor.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 favorite, got %d", count)
	}

	page, err := repo.ListStartups(ctx, investor.ID, "", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 startup, got %d", len(page.Items))
	}
	if page.Items[0].ID != startup.ID {
		t.Fatalf("expected startup %s, got %s", startup.ID, page.Items[0].ID)
	}

	removed, err := repo.Delete(ctx, investor.ID, startup.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 row removed, got %d", removed)
	}

	removed, err = repo.Delete(ctx, investor.ID, startup.ID)
	if err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected repeat delete to remove nothing, got %d", removed)
	}
}
