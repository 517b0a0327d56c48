package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/vacations/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/vacations/pkg/metrics"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, metrics.Middleware)

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/vacations", h.Home)
			r.Get("/countries", h.Countries)
			r.Post("/like", h.ToggleLike)

			r.Group(func(r chi.Router) {
				r.Use(mw.Admin)

				r.Post("/vacations", h.AddVacation)
				r.Get("/vacations/{id}", h.GetVacation)
				r.Put("/vacations/{id}", h.UpdateVacation)
				r.Delete("/vacations/{id}", h.DeleteVacation)
			})
		})
	})

	return router
}
