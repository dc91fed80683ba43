//go:build wireinject
// +build wireinject

package di

import (
	"studyroom/config"
	"studyroom/helper"
	"studyroom/infras/jwt"
	"studyroom/infras/kafka"
	"studyroom/infras/mailer"
	"studyroom/infras/metrics"
	"studyroom/infras/otel"
	"studyroom/infras/postgres"
	"studyroom/infras/redis"
	"studyroom/infras/s3"
	"studyroom/internal/domains/notification"
	"studyroom/internal/views"
	"studyroom/shared/cache"
	"studyroom/transport/http"
	"studyroom/transport/http/middleware"
	"studyroom/transport/http/router"

	analyticsRepository "studyroom/internal/domains/analytics/repository"
	analyticsService "studyroom/internal/domains/analytics/service"
	authService "studyroom/internal/domains/auth/service"
	bookingRepository "studyroom/internal/domains/booking/repository"
	bookingService "studyroom/internal/domains/booking/service"
	roomRepository "studyroom/internal/domains/room/repository"
	roomService "studyroom/internal/domains/room/service"
	staffRepository "studyroom/internal/domains/staff/repository"
	staffService "studyroom/internal/domains/staff/service"

	analyticsHandler "studyroom/internal/handlers/analytics"
	authHandler "studyroom/internal/handlers/auth"
	bookingHandler "studyroom/internal/handlers/booking"
	roomHandler "studyroom/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
	metrics.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewStaffMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	views.New,
)

var notificationDomain = wire.NewSet(
	notification.NewConsumer,
	notification.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsRepository.New,
	analyticsService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	roomDomain,
	bookingDomain,
	staffDomain,
	authDomain,
	analyticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	authHandler.New,
	analyticsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *notification.Consumer {
	wire.Build(
		configurations,
		kafka.New,
		mailer.New,
		metrics.New,
		otel.New,
		notification.NewConsumer,
	)

	return &notification.Consumer{}
}

func InitializeSeeder() *helper.Seeder {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		s3.New,
		cache.NewRedisCache,
		roomDomain,
		staffDomain,
		helper.NewSeeder,
	)

	return &helper.Seeder{}
}
