package main

import (
	"adscape/config"
	"adscape/di"
	"adscape/helper"
	"adscape/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Adscape API
// @version 1.0
// @description Billboard booking and live broadcast service.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
