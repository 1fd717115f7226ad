package main

import (
	"bookit/config"
	"bookit/helper"
	"bookit/infras/postgres"
	"bookit/shared/logger"
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength  = 2
	actionSeed = "seed"
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	switch action := os.Args[1]; action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
		}
	case actionSeed:
		db, err := postgres.New(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}

		err = helper.Seed(context.Background(), db)
		_ = db.Close()

		if err != nil {
			log.Fatal().Err(err).Msg("Seeding failed")
		}
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'seed'")
	}
}
