//go:build wireinject
// +build wireinject

package di

import (
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/jwt"
	"rentdesk/infras/kafka"
	"rentdesk/infras/live"
	"rentdesk/infras/openai"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/infras/redis"
	"rentdesk/infras/s3"
	"rentdesk/internal/domains/document"
	"rentdesk/permissions"
	"rentdesk/shared/cache"
	"rentdesk/shared/invalidator"
	"rentdesk/transport/http"
	"rentdesk/transport/http/middleware"
	"rentdesk/transport/http/router"

	"github.com/google/wire"

	accessTokenRepository "rentdesk/internal/domains/accesstoken/repository"
	accessTokenService "rentdesk/internal/domains/accesstoken/service"
	bookingRepository "rentdesk/internal/domains/booking/repository"
	bookingService "rentdesk/internal/domains/booking/service"
	bookingDetailService "rentdesk/internal/domains/bookingdetail/service"
	depositRepository "rentdesk/internal/domains/deposit/repository"
	expenseRepository "rentdesk/internal/domains/expense/repository"
	fineRepository "rentdesk/internal/domains/fine/repository"
	fineService "rentdesk/internal/domains/fine/service"
	harnessService "rentdesk/internal/domains/harness/service"
	invoiceRepository "rentdesk/internal/domains/invoice/repository"
	invoiceService "rentdesk/internal/domains/invoice/service"
	paymentRepository "rentdesk/internal/domains/payment/repository"
	paymentService "rentdesk/internal/domains/payment/service"

	accessTokenHandler "rentdesk/internal/handlers/accesstoken"
	bookingHandler "rentdesk/internal/handlers/booking"
	bookingDetailHandler "rentdesk/internal/handlers/bookingdetail"
	fineHandler "rentdesk/internal/handlers/fine"
	harnessHandler "rentdesk/internal/handlers/harness"
	invoiceHandler "rentdesk/internal/handlers/invoice"
	paymentHandler "rentdesk/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
	document.NewSettings,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	live.New,
	s3.New,
	openai.New,
	functions.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	invalidator.New,
)

var repositories = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewSummary,
	paymentRepository.New,
	fineRepository.New,
	invoiceRepository.NewClient,
	invoiceRepository.NewSupplier,
	expenseRepository.New,
	depositRepository.New,
	accessTokenRepository.New,
	wire.Struct(new(bookingDetailService.Repositories), "*"),
)

var domains = wire.NewSet(
	bookingService.New,
	paymentService.New,
	invoiceService.New,
	fineService.New,
	accessTokenService.New,
	bookingDetailService.New,
	harnessService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	paymentHandler.New,
	invoiceHandler.New,
	fineHandler.New,
	accessTokenHandler.New,
	bookingDetailHandler.New,
	harnessHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeHarness() harnessService.Harness {
	wire.Build(
		config.Get,
		otel.New,
		functions.New,
		harnessService.New,
	)

	return nil
}
