package router

import (
	"bookit/internal/handlers/booking"
	"bookit/internal/handlers/experience"
	"bookit/internal/handlers/promo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Experience experience.Handler
	Booking    booking.Handler
	Promo      promo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Experience.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Promo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
