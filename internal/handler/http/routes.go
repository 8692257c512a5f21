package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Everything is mounted under /api, matching the
// paths the dashboard frontend calls.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		MaxAge:         300,
	}))

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Get("/categorias", h.categorias)
			r.Get("/health", h.health)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)
			r.Put("/auth/profile", h.updateProfile)

			r.Route("/demandas", func(r chi.Router) {
				r.Post("/", h.createDemanda)
				r.Get("/", h.listDemandas)
				r.Get("/{id}", h.getDemanda)
				r.Patch("/{id}", h.updateDemanda)
				r.Delete("/{id}", h.deleteDemanda)
			})

			r.Get("/dashboard/stats", h.dashboardStats)
			r.Get("/ranking", h.ranking)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.listUsers)
				r.Put("/users/{id}/type", h.setUserType)
				r.Delete("/users/{id}", h.deleteUser)
				r.Get("/demandas", h.listAllDemandas)
			})
		})
	})

	return router
}
