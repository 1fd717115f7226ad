package main

import (
	"bookit/config"
	"bookit/di"
	"bookit/helper"
	"bookit/shared/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

//	@title						Bookit API
//	@version					1.0
//	@description				Browse travel experiences, quote and book time slots, validate promo codes.
//	@BasePath					/api
//	@schemes					http https
//	@accept						json
//	@produce					json

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	app, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := app.HTTP.Serve(ctx)
	if serveErr != nil {
		log.Error().Err(serveErr).Msg("HTTP server stopped with error")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := app.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if serveErr != nil {
		os.Exit(1) //nolint:gocritic
	}
}
