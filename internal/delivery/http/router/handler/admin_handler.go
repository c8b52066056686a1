package handler

import (
	"net/http"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin maintenance endpoints.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Stats returns catalog totals and per-category recipe counts.
func (h *AdminHandler) Stats(c echo.Context) error {
	output, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// SeedData loads the demo catalog. Re-seeding a populated catalog reports
// zero rows created.
func (h *AdminHandler) SeedData(c echo.Context) error {
	output, err := h.uc.SeedData(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Demo data seeded successfully"
	if output.CategoriesCreated == 0 && output.RecipesCreated == 0 {
		message = "Catalog already contains data, nothing seeded"
	}

	return response.Success(c, http.StatusOK, output, message)
}

// ResetData wipes the whole catalog.
func (h *AdminHandler) ResetData(c echo.Context) error {
	output, err := h.uc.ResetData(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Catalog reset successfully")
}
