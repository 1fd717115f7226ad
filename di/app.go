package di

import (
	"bookit/infras/kafka"
	"bookit/infras/otel"
	"bookit/infras/postgres"
	"bookit/transport/http"
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Application is the wired HTTP server plus the resources it must release on exit.
type Application struct {
	HTTP  *http.HTTP
	DB    *postgres.Connection
	Redis *goRedis.Client
	Kafka kafka.Client
	Otel  otel.Otel
}

func NewApplication(server *http.HTTP, db *postgres.Connection, redis *goRedis.Client, kafka kafka.Client, otel otel.Otel) *Application {
	return &Application{
		HTTP:  server,
		DB:    db,
		Redis: redis,
		Kafka: kafka,
		Otel:  otel,
	}
}

// Close releases resources in reverse dependency order. Pending events and spans are
// flushed before the stores close.
func (a *Application) Close(ctx context.Context) error {
	var errs []error

	if err := a.Kafka.Close(); err != nil {
		errs = append(errs, fmt.Errorf("kafka: %w", err))
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("otel: %w", err))
	}

	if err := a.Redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis: %w", err))
	}

	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("postgres: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Msg("Application resources released")

	return nil
}
