package auth

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/profiles"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
	"github.com/venturehub/venturehub-backend/pkg/config"
	"github.com/venturehub/venturehub-backend/pkg/db"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
	"github.com/venturehub/venturehub-backend/pkg/security"
)

// RegisterService handles the signup transaction. The user row and the role
// profile are created together or not at all.
type RegisterService interface {
	Register(ctx context.Context, role enums.Role, req RegisterRequest) error
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, role enums.Role, req RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "username and email are required")
	}
	if role == enums.RoleAdmin || !role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "registration is not available for this role")
	}
	if req.Password != req.ConfirmPassword {
		return pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		taken, err := userRepo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check credentials")
		}
		if taken {
			return pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
		})
		if err != nil {
			return createUserErr(err)
		}

		profileSvc, err := profiles.NewService(profiles.ServiceParams{
			StartupRepo:      startups.NewRepository(tx),
			InvestorRepo:     investors.NewRepository(tx),
			ManufacturerRepo: manufacturers.NewRepository(tx),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build profile service")
		}
		if _, err := profileSvc.EnsureProfile(ctx, user); err != nil {
			return err
		}
		return nil
	})
}

// createUserErr maps an insert that lost a uniqueness race to the same
// conflict the pre-check reports.
func createUserErr(err error) error {
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
}
