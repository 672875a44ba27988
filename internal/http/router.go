package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/acadfund/acadfund/internal/http/auth"
	"github.com/acadfund/acadfund/internal/http/catalog"
	"github.com/acadfund/acadfund/internal/http/cycle"
	"github.com/acadfund/acadfund/internal/http/department"
	"github.com/acadfund/acadfund/internal/http/proposal"
	"github.com/acadfund/acadfund/internal/http/report"
	"github.com/acadfund/acadfund/internal/http/user"
)

func New(
	authSecret string,
	departmentsV1 *department.Handler,
	cyclesV1 *cycle.Handler,
	catalogV1 *catalog.Handler,
	proposalsV1 *proposal.Handler,
	reportsV1 *report.Handler,
	usersV1 *user.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/departments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			departmentsV1.Routes(r)
		})

		r.Route("/cycles", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cyclesV1.Routes(r)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			catalogV1.Routes(r)
		})

		r.Route("/proposals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			proposalsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			usersV1.Routes(r)
		})
	})

	return router
}
