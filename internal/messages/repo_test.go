//go:build db
// +build db

package messages

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

func TestRepositoryMarkReadFlipsOnce(t *testing.T) {
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

	sender := createTestUser(t, tx, enums.RoleStartup)
	recipient := createTestUser(t, tx, enums.RoleInvestor)

	message := &models.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Subject:     "intro",
		Content:     "hello",
	}
	if err := repo.Create(ctx, message); err != nil {
		t.Fatalf("create message: %v", err)
	}

	unread, err := repo.CountUnread(ctx, recipient.ID)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread, got %d", unread)
	}

	flipped, err := repo.MarkRead(ctx, message.ID, sender.ID)
	if err != nil {
		t.Fatalf("mark read as sender: %v", err)
	}
	if flipped {
		t.Fatal("expected sender view to leave the flag alone")
	}

	flipped, err = repo.MarkRead(ctx, message.ID, recipient.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !flipped {
		t.Fatal("expected first recipient view to flip the flag")
	}

	flipped, err = repo.MarkRead(ctx, message.ID, recipient.ID)
	if err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}
	if flipped {
		t.Fatal("expected repeat view to be a no-op")
	}

	unread, err = repo.CountUnread(ctx, recipient.ID)
	if err != nil {
		t.Fatalf("recount unread: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected 0 unread, got %d", unread)
	}

	fetched, err := repo.FindByID(ctx, message.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !fetched.IsRead {
		t.Fatal("expected message to be read")
	}
}
