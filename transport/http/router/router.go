package router

import (
	"lodge/internal/handlers/approval"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/event"
	"lodge/internal/handlers/monitor"
	"lodge/internal/handlers/pricing"
	"lodge/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Pricing  pricing.Handler
	Event    event.Handler
	Approval approval.Handler
	Monitor  monitor.Handler
	Booking  booking.Handler
	Room     room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/pricing", func(pricingGroup chi.Router) {
			r.DomainHandlers.Pricing.Router(pricingGroup)
			r.DomainHandlers.Event.Router(pricingGroup)
			r.DomainHandlers.Approval.Router(pricingGroup)
		})

		r.DomainHandlers.Monitor.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
