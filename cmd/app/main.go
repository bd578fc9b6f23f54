package main

import (
	"lodge/config"
	"lodge/di"
	"lodge/helper"
	"lodge/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:generate swag init -g cmd/app/main.go -o docs --parseDependency --parseInternal

// @title           Lodge Pricing API
// @version         1.0
// @description     Dynamic room pricing: price calculation, the pricing event queue, manual price approvals and monitoring.
// @BasePath        /
// @schemes         http https
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	http := di.InitializeService()
	http.Serve()
}
