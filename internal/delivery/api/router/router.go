// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/router/handler"
	"pluma/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	FavoriteHandler     *handler.FavoriteHandler
	CheckoutHandler     *handler.CheckoutHandler
	EntitlementHandler  *handler.EntitlementHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	favoriteHandler     *handler.FavoriteHandler
	checkoutHandler     *handler.CheckoutHandler
	entitlementHandler  *handler.EntitlementHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		favoriteHandler:     params.FavoriteHandler,
		checkoutHandler:     params.CheckoutHandler,
		entitlementHandler:  params.EntitlementHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Identify)
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn, r.rateLimitMiddleware.Limit)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/session/events", r.authHandler.SessionEvents, r.authMiddleware.Authenticate)
		authGroup.POST("/password/reset-request", r.authHandler.RequestPasswordReset, r.rateLimitMiddleware.Limit)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword, r.rateLimitMiddleware.Limit)
		authGroup.PUT("/password", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Identify) // Anonymous browsing is allowed on the catalog

	// Catalog routes
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/featured", r.catalogHandler.ListFeatured)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/genres", r.catalogHandler.ListGenres)
	apiV1.GET("/products/:id/read", r.catalogHandler.Read, r.authMiddleware.Authenticate)
	apiV1.POST("/products", r.catalogHandler.CreateProduct,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	)

	// Everything below belongs to a signed-in reader
	cartGroup := apiV1.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.ListCart)
		cartGroup.POST("", r.cartHandler.AddToCart)
		cartGroup.DELETE("/:id", r.cartHandler.RemoveFromCart)
	}

	favoritesGroup := apiV1.Group("/favorites", r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("/:productId/toggle", r.favoriteHandler.ToggleFavorite)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.RemoveFavorite)
	}

	checkoutGroup := apiV1.Group("/checkout", r.authMiddleware.Authenticate)
	{
		checkoutGroup.GET("", r.checkoutHandler.Summary)
		checkoutGroup.POST("", r.checkoutHandler.Finalize)
		checkoutGroup.GET("/pix", r.checkoutHandler.PixQRCode)
	}

	apiV1.GET("/entitlements", r.entitlementHandler.ListEntitlements, r.authMiddleware.Authenticate)

	profileGroup := apiV1.Group("/profile", r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateUsername)
		profileGroup.POST("/avatar", r.profileHandler.UploadAvatar)
	}
}
