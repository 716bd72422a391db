package app

import (
	"github.com/contactdesk/contactdesk-backend/internal/handlers"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Contact *handlers.ContactHandler
	Address *handlers.AddressHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:    handlers.NewAuthHandler(log, serviceset.Auth),
		User:    handlers.NewUserHandler(log, serviceset.User),
		Contact: handlers.NewContactHandler(log, serviceset.Contact),
		Address: handlers.NewAddressHandler(log, serviceset.Address),
	}
}
