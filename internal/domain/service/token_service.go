package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shapeme/internal/domain/entity"
)

// TokenPurposeAccess marks access tokens. ValidateToken rejects any token
// carrying a different purpose, defending against token confusion if other
// token kinds are ever introduced.
const TokenPurposeAccess = "access"

// Claims defines the identity facts embedded in an access token.
type Claims struct {
	UserID  int64  `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Expiry is the only invalidation mechanism; there is no revocation list.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-limited access token for the user.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateToken checks signature, expiry and purpose, returning the
	// claims on success. All failure modes collapse into a single error.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token TTL.
	AccessTokenDuration() time.Duration
}
