package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpirationDuration is the lifetime of issued tokens.
const TokenExpirationDuration = 2 * time.Hour

// Payload is the claim set carried by console tokens.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// PayloadCtxKey is the context key for the authenticated payload.
type PayloadCtxKey struct{}

type implManager struct {
	secretKey string
}
