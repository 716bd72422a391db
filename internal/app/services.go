package app

import (
	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	User    services.UserService
	Contact services.ContactService
	Address services.AddressService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:    services.NewAuthService(db, log, reposet.User, cfg.BcryptCost),
		User:    services.NewUserService(db, log, reposet.User, cfg.BcryptCost),
		Contact: services.NewContactService(db, log, reposet.Contact),
		Address: services.NewAddressService(db, log, reposet.Contact, reposet.Address),
	}
}
