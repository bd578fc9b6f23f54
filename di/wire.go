//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/rabbitmq"
	"lodge/infras/redis"
	"lodge/infras/sysmetrics"
	"lodge/shared/cache"
	"lodge/shared/stats"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"
	"lodge/transport/worker"

	approvalRepository "lodge/internal/domains/approval/repository"
	approvalService "lodge/internal/domains/approval/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	competitorRepository "lodge/internal/domains/competitor/repository"
	eventRepository "lodge/internal/domains/event/repository"
	eventService "lodge/internal/domains/event/service"
	metricRepository "lodge/internal/domains/metric/repository"
	monitorRepository "lodge/internal/domains/monitor/repository"
	monitorService "lodge/internal/domains/monitor/service"
	notificationService "lodge/internal/domains/notification/service"
	pricingRepository "lodge/internal/domains/pricing/repository"
	pricingService "lodge/internal/domains/pricing/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	settingRepository "lodge/internal/domains/setting/repository"
	settingService "lodge/internal/domains/setting/service"

	approvalHandler "lodge/internal/handlers/approval"
	bookingHandler "lodge/internal/handlers/booking"
	eventHandler "lodge/internal/handlers/event"
	monitorHandler "lodge/internal/handlers/monitor"
	pricingHandler "lodge/internal/handlers/pricing"
	roomHandler "lodge/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	rabbitmq.New,
	sysmetrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	stats.NewRedisRecorder,
)

var referenceDomain = wire.NewSet(
	roomRepository.New,
	competitorRepository.New,
	metricRepository.New,
	settingRepository.New,
	settingService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.ProvideJitter,
	pricingService.New,
)

var approvalDomain = wire.NewSet(
	approvalRepository.New,
	approvalService.New,
	notificationService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	roomService.New,
)

var monitorDomain = wire.NewSet(
	monitorRepository.NewAlert,
	monitorRepository.NewRule,
	monitorRepository.NewCooldown,
	monitorService.New,
)

var domains = wire.NewSet(
	referenceDomain,
	pricingDomain,
	approvalDomain,
	eventDomain,
	bookingDomain,
	monitorDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pricingHandler.New,
	eventHandler.New,
	approvalHandler.New,
	monitorHandler.New,
	bookingHandler.New,
	roomHandler.New,
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

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		worker.New,
	)

	return &worker.Worker{}
}
