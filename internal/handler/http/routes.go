package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/signin", h.signin)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/recommendations", h.recommendations)
		r.Get("/api/watchlist", h.watchlist)
		r.Post("/api/feedback", h.feedback)
	})

	// administrative control surface
	router.Post("/api/admin/sync", h.triggerSync)

	return router
}
