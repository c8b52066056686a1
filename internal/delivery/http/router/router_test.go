package router

import (
	"log/slog"
	"net/http"
	"testing"

	"shapeme/config"
	"shapeme/internal/delivery/http/middleware"
	"shapeme/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// registeredRoutes builds the full route table. Handlers are constructed with
// nil usecases since registration never invokes them.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(nil),
		UserHandler:     handler.NewUserHandler(nil),
		CategoryHandler: handler.NewCategoryHandler(nil),
		RecipeHandler:   handler.NewRecipeHandler(nil),
		AdminHandler:    handler.NewAdminHandler(nil),
		UploadHandler:   handler.NewUploadHandler(nil),
		WebhookHandler:  handler.NewWebhookHandler(nil, &config.Config{}, slog.Default()),
		AuthMiddleware:  middleware.NewAuthMiddleware(nil, nil),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	routes := make(map[string]bool)
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRegisterRoutes_MethodsAndPaths(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/auth/token",
		http.MethodPost + " /api/users",
		http.MethodPost + " /api/users/admin",
		http.MethodGet + " /api/users/me",
		http.MethodGet + " /api/categories",
		http.MethodGet + " /api/categories/:id",
		http.MethodPost + " /api/categories",
		http.MethodPut + " /api/categories/:id",
		http.MethodDelete + " /api/categories/:id",
		http.MethodGet + " /api/recipes",
		http.MethodGet + " /api/recipes/:id",
		http.MethodGet + " /api/recipes/category/:id",
		http.MethodPost + " /api/recipes",
		http.MethodPut + " /api/recipes/:id",
		http.MethodDelete + " /api/recipes/:id",
		http.MethodGet + " /api/admin/stats",
		http.MethodPost + " /api/admin/seed-data",
		http.MethodDelete + " /api/admin/reset-data",
		http.MethodPost + " /api/uploads/image",
		http.MethodGet + " /api/images/url",
		http.MethodPost + " /api/webhooks/hotmart",
	}
	for _, want := range expected {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestRegisterRoutes_ResetDataUsesDeleteVerb(t *testing.T) {
	routes := registeredRoutes(t)

	// The catalog wipe rides on DELETE like the rest of the destructive
	// surface; a POST to it must not resolve.
	assert.True(t, routes[http.MethodDelete+" /api/admin/reset-data"])
	assert.False(t, routes[http.MethodPost+" /api/admin/reset-data"])
}
