package app

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/utils"
)

type Config struct {
	Port             string
	BcryptCost       int
	CORSAllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "3002", log)
	bcryptCost := utils.GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost, log)
	originsRaw := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	var origins []string
	for _, o := range strings.Split(originsRaw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:             port,
		BcryptCost:       bcryptCost,
		CORSAllowOrigins: origins,
	}
}
