package app

import (
	"time"

	middle "pulsewatch/internals/middleware"
	"pulsewatch/internals/modules/monitor"
	"pulsewatch/internals/modules/sla"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func RegisterRoutes(c *Container) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middle.Logger(c.Logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", c.HealthHandler)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Mount("/monitors", monitor.Routes(c.monitorHandler))
		v1.Mount("/sla", sla.Routes(c.slaHandler))
	})

	return r
}
