package handler

import (
	"net/http"
	"strconv"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe handlers.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

type createRecipeRequest struct {
	TitlePT         string `json:"title_pt" validate:"required,max=200"`
	TitleEN         string `json:"title_en" validate:"required,max=200"`
	TitleES         string `json:"title_es" validate:"required,max=200"`
	DescriptionPT   string `json:"description_pt" validate:"required"`
	DescriptionEN   string `json:"description_en" validate:"required"`
	DescriptionES   string `json:"description_es" validate:"required"`
	ImageURL        string `json:"image_url" validate:"omitempty,max=500"`
	Difficulty      int    `json:"difficulty" validate:"required,min=1,max=5"`
	PrepTimeMinutes int    `json:"prep_time_minutes" validate:"required,min=1"`
	CategoryID      int64  `json:"category_id" validate:"required"`
}

type updateRecipeRequest struct {
	TitlePT         *string `json:"title_pt" validate:"omitempty,max=200"`
	TitleEN         *string `json:"title_en" validate:"omitempty,max=200"`
	TitleES         *string `json:"title_es" validate:"omitempty,max=200"`
	DescriptionPT   *string `json:"description_pt"`
	DescriptionEN   *string `json:"description_en"`
	DescriptionES   *string `json:"description_es"`
	ImageURL        *string `json:"image_url" validate:"omitempty,max=500"`
	Difficulty      *int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	PrepTimeMinutes *int    `json:"prep_time_minutes" validate:"omitempty,min=1"`
	CategoryID      *int64  `json:"category_id"`
}

// Create handles recipe creation.
func (h *RecipeHandler) Create(c echo.Context) error {
	var input createRecipeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.Create(c.Request().Context(), &usecase.CreateRecipeInput{
		TitlePT:         input.TitlePT,
		TitleEN:         input.TitleEN,
		TitleES:         input.TitleES,
		DescriptionPT:   input.DescriptionPT,
		DescriptionEN:   input.DescriptionEN,
		DescriptionES:   input.DescriptionES,
		ImageURL:        input.ImageURL,
		Difficulty:      input.Difficulty,
		PrepTimeMinutes: input.PrepTimeMinutes,
		CategoryID:      input.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// Get returns a single recipe by ID.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Recipe ID must be an integer")
	}

	recipe, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}

// List returns a page of recipes, optionally filtered by category and a
// case-insensitive title search across all three languages.
func (h *RecipeHandler) List(c echo.Context) error {
	skip, limit := pageParams(c)

	input := &usecase.ListRecipesInput{
		Skip:   skip,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "category_id must be an integer")
		}
		input.CategoryID = &categoryID
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"recipes": output.Recipes,
		"total":   output.Total,
		"skip":    output.Skip,
		"limit":   output.Limit,
		"filters": echo.Map{
			"category_id": output.CategoryID,
			"search":      output.Search,
		},
	}, "")
}

// ListByCategory returns every recipe of one category.
func (h *RecipeHandler) ListByCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Category ID must be an integer")
	}

	recipes, err := h.uc.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// Update applies partial changes to a recipe.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Recipe ID must be an integer")
	}

	var input updateRecipeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateRecipeInput{
		TitlePT:         input.TitlePT,
		TitleEN:         input.TitleEN,
		TitleES:         input.TitleES,
		DescriptionPT:   input.DescriptionPT,
		DescriptionEN:   input.DescriptionEN,
		DescriptionES:   input.DescriptionES,
		ImageURL:        input.ImageURL,
		Difficulty:      input.Difficulty,
		PrepTimeMinutes: input.PrepTimeMinutes,
		CategoryID:      input.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// Delete removes a recipe.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Recipe ID must be an integer")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted successfully")
}
