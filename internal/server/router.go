package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/handlers"
	"github.com/contactdesk/contactdesk-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	ContactHandler *handlers.ContactHandler
	AddressHandler *handlers.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware

	CORSAllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORSAllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Public
		api.POST("/users", cfg.AuthHandler.Register)
		api.POST("/users/login", cfg.AuthHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// User
		protected.GET("/users/current", cfg.UserHandler.GetCurrent)
		protected.PATCH("/users/current", cfg.UserHandler.UpdateCurrent)
		protected.DELETE("/users/logout", cfg.AuthHandler.Logout)

		// Contacts
		protected.POST("/contacts", cfg.ContactHandler.Create)
		protected.GET("/contacts", cfg.ContactHandler.Search)
		protected.GET("/contacts/:contactId", cfg.ContactHandler.Get)
		protected.PUT("/contacts/:contactId", cfg.ContactHandler.Update)
		protected.DELETE("/contacts/:contactId", cfg.ContactHandler.Delete)

		// Addresses (nested under an owned contact)
		protected.POST("/contacts/:contactId/addresses", cfg.AddressHandler.Create)
		protected.GET("/contacts/:contactId/addresses", cfg.AddressHandler.List)
		protected.GET("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Get)
		protected.PUT("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Update)
		protected.DELETE("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Delete)
	}

	return router
}
