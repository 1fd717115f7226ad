//go:build wireinject
// +build wireinject

package di

import (
	"bookit/config"
	"bookit/infras/kafka"
	"bookit/infras/otel"
	"bookit/infras/postgres"
	"bookit/infras/redis"
	"bookit/infras/s3"
	"bookit/internal/domains/pricing"
	bookingHandler "bookit/internal/handlers/booking"
	experienceHandler "bookit/internal/handlers/experience"
	promoHandler "bookit/internal/handlers/promo"
	"bookit/shared/cache"
	"bookit/transport/http"
	"bookit/transport/http/middleware"
	"bookit/transport/http/router"

	bookingRepository "bookit/internal/domains/booking/repository"
	bookingService "bookit/internal/domains/booking/service"
	experienceRepository "bookit/internal/domains/experience/repository"
	experienceService "bookit/internal/domains/experience/service"
	promoService "bookit/internal/domains/promo/service"
	slotRepository "bookit/internal/domains/slot/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	wire.Bind(new(http.HealthChecker), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	pricing.New,
)

var experienceDomain = wire.NewSet(
	experienceRepository.New,
	slotRepository.New,
	experienceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var promoDomain = wire.NewSet(
	promoService.New,
)

var domains = wire.NewSet(
	experienceDomain,
	bookingDomain,
	promoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	experienceHandler.New,
	bookingHandler.New,
	promoHandler.New,
	router.New,
)

func InitializeService() (*Application, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		NewApplication,
	)

	return &Application{}, nil
}
