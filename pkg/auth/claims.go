package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
// ProfileID is the role profile row (startup, investor profile, or
// manufacturer profile); nil for admins created without one.
type AccessTokenPayload struct {
	UserID    uuid.UUID
	Role      enums.Role
	ProfileID *uuid.UUID
	JTI       string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      enums.Role `json:"role"`
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
	jwt.RegisteredClaims
}
