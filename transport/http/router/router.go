package router

import (
	"rentdesk/internal/handlers/accesstoken"
	"rentdesk/internal/handlers/booking"
	"rentdesk/internal/handlers/bookingdetail"
	"rentdesk/internal/handlers/fine"
	"rentdesk/internal/handlers/harness"
	"rentdesk/internal/handlers/invoice"
	"rentdesk/internal/handlers/payment"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking       booking.Handler
	Payment       payment.Handler
	Invoice       invoice.Handler
	Fine          fine.Handler
	AccessToken   accesstoken.Handler
	BookingDetail bookingdetail.Handler
	Harness       harness.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Fine.Router(routerGroup)
		r.DomainHandlers.AccessToken.Router(routerGroup)
		r.DomainHandlers.BookingDetail.Router(routerGroup)
		r.DomainHandlers.Harness.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
