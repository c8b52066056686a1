package handler

import (
	"net/http"
	"strconv"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	NamePT string `json:"name_pt" validate:"required"`
	NameEN string `json:"name_en" validate:"required"`
	NameES string `json:"name_es" validate:"required"`
}

// Create handles category creation.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.Create(c.Request().Context(), &usecase.CreateCategoryInput{
		NamePT: input.NamePT,
		NameEN: input.NameEN,
		NameES: input.NameES,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// Get returns a single category by ID.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Category ID must be an integer")
	}

	category, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// List returns a page of categories.
func (h *CategoryHandler) List(c echo.Context) error {
	skip, limit := pageParams(c)

	output, err := h.uc.List(c.Request().Context(), &usecase.ListCategoriesInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"categories": output.Categories,
		"total":      output.Total,
		"skip":       output.Skip,
		"limit":      output.Limit,
	}, "")
}

// Update replaces the localized names of a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Category ID must be an integer")
	}

	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateCategoryInput{
		NamePT: input.NamePT,
		NameEN: input.NameEN,
		NameES: input.NameES,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// Delete removes a category that has no recipes.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Category ID must be an integer")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// pageParams reads skip/limit query parameters, leaving range clamping to
// the usecase layer. Unparseable values fall back to the defaults.
func pageParams(c echo.Context) (int, int) {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return skip, limit
}
