package main

import (
	"rentdesk/config"
	"rentdesk/di"
	"rentdesk/helper"
	"rentdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../internal/handlers,../../transport/http/response -o ../../docs

// @title Rentdesk API
// @version 1.0
// @description Booking and billing console for a car-rental business.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
