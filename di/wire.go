//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/shared/cache"
	"frontdesk/shared/event"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	bookingHandler "frontdesk/internal/handlers/booking"

	bookingCardRepository "frontdesk/internal/domains/bookingcard/repository"
	bookingCardService "frontdesk/internal/domains/bookingcard/service"
	bookingCardHandler "frontdesk/internal/handlers/bookingcard"

	paymentRepository "frontdesk/internal/domains/payment/repository"
	paymentService "frontdesk/internal/domains/payment/service"

	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	roomHandler "frontdesk/internal/handlers/room"

	reportRepository "frontdesk/internal/domains/report/repository"
	reportService "frontdesk/internal/domains/report/service"
	reportHandler "frontdesk/internal/handlers/report"

	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	guestHandler "frontdesk/internal/handlers/guest"

	agentRepository "frontdesk/internal/domains/agent/repository"
	agentService "frontdesk/internal/domains/agent/service"
	agentHandler "frontdesk/internal/handlers/agent"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var bookingCardDomain = wire.NewSet(
	bookingCardRepository.New,
	bookingCardService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var agentDomain = wire.NewSet(
	agentRepository.New,
	agentService.New,
)

var domains = wire.NewSet(
	paymentDomain,
	bookingDomain,
	bookingCardDomain,
	roomDomain,
	reportDomain,
	guestDomain,
	agentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingCardHandler.New,
	bookingHandler.New,
	roomHandler.New,
	reportHandler.New,
	guestHandler.New,
	agentHandler.New,
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
