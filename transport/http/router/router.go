package router

import (
	"studyroom/config"
	"studyroom/infras/metrics"
	"studyroom/internal/handlers/analytics"
	"studyroom/internal/handlers/auth"
	"studyroom/internal/handlers/booking"
	"studyroom/internal/handlers/room"
	"studyroom/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Booking   booking.Handler
	Analytics analytics.Handler
}

type Middlewares struct {
	App   middleware.AppMiddleware
	Staff middleware.Staff
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
	Metrics        metrics.Recorder
}

// SetupRoutes mounts the visitor pages, the staff pages behind the login gate and the JSON API under /api/v1.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		r.Middlewares.App.Tracing,
		r.Middlewares.App.Metrics,
	)

	if r.Config.Metrics.Enable {
		router.Handle(r.Config.Metrics.Path, r.Metrics.Handler())
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(pages chi.Router) {
		pages.Use(r.Middlewares.App.RateLimit(), r.Middlewares.App.CSRF())

		pages.Group(func(public chi.Router) {
			public.Use(r.Middlewares.Staff.Identify)

			r.DomainHandlers.Room.Pages(public)
			r.DomainHandlers.Booking.Pages(public)
			r.DomainHandlers.Auth.Pages(public)
		})

		pages.Group(func(staff chi.Router) {
			staff.Use(r.Middlewares.Staff.StaffGate)

			r.DomainHandlers.Room.StaffPages(staff)
			r.DomainHandlers.Booking.StaffPages(staff)
			r.DomainHandlers.Analytics.StaffPages(staff)
		})
	})

	router.Route("/api/v1", func(api chi.Router) {
		api.Use(r.Middlewares.App.CORS(), r.Middlewares.App.RateLimit())

		r.DomainHandlers.Auth.Router(api)
		r.DomainHandlers.Room.Router(api)
		r.DomainHandlers.Booking.Router(api)

		api.Group(func(staff chi.Router) {
			staff.Use(r.Middlewares.Staff.StaffAPI)

			r.DomainHandlers.Analytics.Router(staff)
		})
	})
}

func New(cfg *config.Config, domainHandlers DomainHandlers, middlewares Middlewares, metrics metrics.Recorder) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
		Metrics:        metrics,
	}
}
