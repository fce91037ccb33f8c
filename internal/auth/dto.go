package auth

import (
	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/internal/users"
)

// LoginRequest captures the credentials sent to the role-scoped login endpoints.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the tokens and user produced by a successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ProfileID    *uuid.UUID     `json:"profile_id,omitempty"`
	User         *users.UserDTO `json:"user"`
}

// RegisterRequest contains the payload for the per-role signup endpoints.
// The role itself comes from the route, not the body.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}
