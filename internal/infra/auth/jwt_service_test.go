package auth

import (
	"testing"
	"time"

	"shapeme/config"
	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 30 * time.Minute}

	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:      42,
		Email:   "a@x.com",
		Name:    "Ana",
		IsAdmin: true,
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := testUser()

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, service.TokenPurposeAccess, claims.Purpose)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret-one-very-long-for-testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-two-very-long-for-testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ZeroTTLExpiresImmediately(t *testing.T) {
	svc := &jwtService{secret: "test_access_secret_key_very_long_for_testing", accessTTL: 0}

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	// exp == iat, so the token is already expired by validation time.
	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongPurposeRejected(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc := &jwtService{secret: secret, accessTTL: time.Minute}

	// Hand-craft a token with a non-access purpose but a valid signature.
	now := time.Now()
	refreshClaims := &service.Claims{
		UserID:  7,
		Email:   "a@x.com",
		Purpose: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token purpose")
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, jwtService.AccessTokenDuration())
}

func TestJWTService_DefaultTTLWhenUnconfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultAccessTokenTTL, jwtService.AccessTokenDuration())
}
