package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/repository"
	"shapeme/internal/domain/service"
	mockrepo "shapeme/internal/mocks/repository"
	mocksvc "shapeme/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	tokenSvc := mocksvc.NewMockTokenService(t)
	userRepo := mockrepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	user := &entity.User{ID: 7, Email: "alice@example.com", IsActive: true}
	tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{UserID: 7, Email: "alice@example.com", Purpose: service.TokenPurposeAccess}, nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	c, rec := newAuthTestContext(t, "Bearer good-token")

	called := false
	err := m.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	current, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestAuthenticate_FailuresCollapseTo401(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(tokenSvc *mocksvc.MockTokenService, userRepo *mockrepo.MockUserRepository)
	}{
		{
			name:          "missing header",
			authorization: "",
			setup:         func(_ *mocksvc.MockTokenService, _ *mockrepo.MockUserRepository) {},
		},
		{
			name:          "not a bearer scheme",
			authorization: "Basic dXNlcjpwYXNz",
			setup:         func(_ *mocksvc.MockTokenService, _ *mockrepo.MockUserRepository) {},
		},
		{
			name:          "invalid token",
			authorization: "Bearer bad-token",
			setup: func(tokenSvc *mocksvc.MockTokenService, _ *mockrepo.MockUserRepository) {
				tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("invalid token"))
			},
		},
		{
			name:          "unknown user",
			authorization: "Bearer orphan-token",
			setup: func(tokenSvc *mocksvc.MockTokenService, userRepo *mockrepo.MockUserRepository) {
				tokenSvc.On("ValidateToken", "orphan-token").
					Return(&service.Claims{Email: "gone@example.com", Purpose: service.TokenPurposeAccess}, nil)
				userRepo.On("FindByEmail", mock.Anything, "gone@example.com").
					Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocksvc.NewMockTokenService(t)
			userRepo := mockrepo.NewMockUserRepository(t)
			tt.setup(tokenSvc, userRepo)

			m := NewAuthMiddleware(tokenSvc, userRepo)
			c, rec := newAuthTestContext(t, tt.authorization)

			called := false
			err := m.Authenticate(okHandler(&called))(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tokenSvc := mocksvc.NewMockTokenService(t)
	userRepo := mockrepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyUser, &entity.User{ID: 1, IsAdmin: true})

		called := false
		err := m.RequireAdmin(okHandler(&called))(c)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyUser, &entity.User{ID: 2, IsAdmin: false})

		called := false
		err := m.RequireAdmin(okHandler(&called))(c)

		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})

	t.Run("no user in context", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		called := false
		err := m.RequireAdmin(okHandler(&called))(c)

		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
