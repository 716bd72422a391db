package app

import (
	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:      handlerset.Auth,
		UserHandler:      handlerset.User,
		ContactHandler:   handlerset.Contact,
		AddressHandler:   handlerset.Address,
		AuthMiddleware:   middlewareset.Auth,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
}
