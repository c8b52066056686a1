// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/repository"
	"shapeme/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUser is the echo context key carrying the authenticated user.
const ContextKeyUser = "user"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and loads the account it belongs
// to. A missing header, a bad token and an unknown user all produce the same
// 401 so the response never reveals which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthenticated(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Email == "" {
			return unauthenticated(c)
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Email)
		if err != nil {
			return unauthenticated(c)
		}

		// Handlers read the full account, not just the claims, so admin
		// revocation takes effect without waiting for token expiry.
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireAdmin rejects non-admin accounts. It must run AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return unauthenticated(c)
		}
		if !user.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Admin privileges required")
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required or token invalid")
}
