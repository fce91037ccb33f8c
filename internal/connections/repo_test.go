//go:build db
// +build db

package connections

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

func createTestPair(t *testing.T, tx *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()

	manufacturerUser := createTestUser(t, tx, enums.RoleManufacturer)
	manufacturer := &models.ManufacturerProfile{
		ID:          uuid.New(),
		UserID:      manufacturerUser.ID,
		CompanyName: "Repo Test Works",
	}
	if err := tx.Create(manufacturer).Error; err != nil {
		t.Fatalf("create manufacturer profile: %v", err)
	}

	founder := createTestUser(t, tx, enums.RoleStartup)
	startup := &models.Startup{
		ID:        uuid.New(),
		FounderID: founder.ID,
		Name:      "Repo Test Startup",
		Niche:     "Robotics",
		Stage:     "SEED",
		Vision:    "v",
	}
	if err := tx.Create(startup).Error; err != nil {
		t.Fatalf("create startup: %v", err)
	}
	return manufacturer.ID, startup.ID
}

func TestRepositoryGetOrCreateIsIdempotentPerPair(t *testing.T) {
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
	manufacturerID, startupID := createTestPair(t, tx)

	first, created, err := repo.GetOrCreate(ctx, manufacturerID, startupID, "interested in your product line")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !created {
		t.Fatal("expected first call to create the row")
	}
	if first.Status != enums.ConnectionStatusPending {
		t.Fatalf("expected PENDING, got %s", first.Status)
	}

	second, created, err := repo.GetOrCreate(ctx, manufacturerID, startupID, "a different note")
	if err != nil {
		t.Fatalf("repeat get or create: %v", err)
	}
	if created {
		t.Fatal("expected repeat call to be a no-op")
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %s and %s", first.ID, second.ID)
	}
	if second.Message != first.Message {
		t.Fatalf("expected original message to survive, got %q", second.Message)
	}
}

func TestRepositoryUpdateStatusIfGuardsCurrentStatus(t *testing.T) {
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
	manufacturerID, startupID := createTestPair(t, tx)

	row, _, err := repo.GetOrCreate(ctx, manufacturerID, startupID, "hello")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	affected, err := repo.UpdateStatusIf(ctx, row.ID, enums.ConnectionStatusPending, enums.ConnectionStatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row updated, got %d", affected)
	}

	affected, err = repo.UpdateStatusIf(ctx, row.ID, enums.ConnectionStatusPending, enums.ConnectionStatusRejected)
	if err != nil {
		t.Fatalf("reject after accept: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected stale transition to touch nothing, got %d", affected)
	}

	fetched, err := repo.FindByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if fetched.Status != enums.ConnectionStatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", fetched.Status)
	}
}
