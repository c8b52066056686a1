// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shapeme/internal/delivery/http/middleware"
	"shapeme/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	RecipeHandler   *handler.RecipeHandler
	AdminHandler    *handler.AdminHandler
	UploadHandler   *handler.UploadHandler
	WebhookHandler  *handler.WebhookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	recipeHandler   *handler.RecipeHandler
	adminHandler    *handler.AdminHandler
	uploadHandler   *handler.UploadHandler
	webhookHandler  *handler.WebhookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		recipeHandler:   params.RecipeHandler,
		adminHandler:    params.AdminHandler,
		uploadHandler:   params.UploadHandler,
		webhookHandler:  params.WebhookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Catalog reads stay public; every mutation goes through the admin chain.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Token endpoint, public by definition
	api.POST("/auth/token", r.authHandler.Token)

	// User routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/admin", r.userHandler.RegisterAdmin,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Category routes, reads public and writes admin-only
	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.POST("", r.categoryHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		categoryGroup.PUT("/:id", r.categoryHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Recipe routes, same read/write split
	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
		recipeGroup.GET("/category/:id", r.recipeHandler.ListByCategory)
		recipeGroup.POST("", r.recipeHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		recipeGroup.PUT("/:id", r.recipeHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Admin maintenance routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.POST("/seed-data", r.adminHandler.SeedData)
		adminGroup.DELETE("/reset-data", r.adminHandler.ResetData)
	}

	// Media routes
	api.POST("/uploads/image", r.uploadHandler.UploadImage,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	api.GET("/images/url", r.uploadHandler.ImageURL)

	// Payment platform callback, guarded by a shared secret instead of a bearer token
	api.POST("/webhooks/hotmart", r.webhookHandler.Hotmart)
}
