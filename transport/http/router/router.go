package router

import (
	"frontdesk/internal/handlers/agent"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/bookingcard"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	BookingCard bookingcard.Handler
	Booking     booking.Handler
	Room        room.Handler
	Report      report.Handler
	Guest       guest.Handler
	Agent       agent.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.BookingCard.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Agent.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
