package handler

import (
	"net/http"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for token issuing.
type AuthHandler struct {
	uc usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// tokenRequest accepts both form-encoded and JSON credentials. The form
// field names follow the OAuth2 password flow so existing clients keep
// working unchanged.
type tokenRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// tokenResponse is deliberately NOT wrapped in the response envelope; token
// clients expect the two raw fields at the top level.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles the credentials-for-token exchange.
func (h *AuthHandler) Token(c echo.Context) error {
	var input tokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request input")
	}
	if input.Username == "" || input.Password == "" {
		return response.BadRequest(c, "INVALID_INPUT", "username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
