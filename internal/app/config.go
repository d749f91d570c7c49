package app

import (
	"strings"

	"github.com/yungbote/storefront-backend/internal/pkg/logger"
	"github.com/yungbote/storefront-backend/internal/utils"
)

type Config struct {
	Port         string
	StoreBackend string
	CORSOrigins  []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	backend := strings.ToLower(strings.TrimSpace(utils.GetEnv("STORE_BACKEND", "memory", log)))

	rawOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	var origins []string
	for _, origin := range strings.Split(rawOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		Port:         port,
		StoreBackend: backend,
		CORSOrigins:  origins,
	}
}
