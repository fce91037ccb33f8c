package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/config"
	"github.com/venturehub/venturehub-backend/pkg/db"
	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/logger"
	"github.com/venturehub/venturehub-backend/pkg/security"
)

const tempPasswordLength = 16

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "create-admin"})

	_ = godotenv.Load()

	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (generated when empty)")
	department := flag.String("department", "Platform Management", "admin department")
	superAdmin := flag.Bool("super", false, "grant super admin")
	flag.Parse()

	if strings.TrimSpace(*username) == "" || strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "both -username and -email are required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "create-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	plaintext := *password
	generated := false
	if plaintext == "" {
		plaintext, err = security.GenerateTempPassword(tempPasswordLength)
		requireResource(ctx, logg, "temp password", err)
		generated = true
	}

	hash, err := security.HashPassword(plaintext, cfg.Password)
	requireResource(ctx, logg, "password hash", err)

	user := models.User{
		Username:     strings.TrimSpace(*username),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
		Role:         enums.RoleAdmin,
		IsActive:     true,
	}

	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		profile := models.AdminProfile{
			UserID:       user.ID,
			Department:   *department,
			IsSuperAdmin: *superAdmin,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("create admin profile: %w", err)
		}
		return nil
	})
	requireResource(ctx, logg, "admin account", err)

	ctx = logg.WithFields(ctx, map[string]any{
		"username": user.Username,
		"user_id":  user.ID.String(),
	})
	logg.Info(ctx, "admin account created")

	if generated {
		fmt.Println("generated password:", plaintext)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "failed to bootstrap "+resource, err)
	os.Exit(1)
}
