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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		if h.authEnabled {
			r.Use(h.auth)
		}

		r.Put("/api/safes/{safeID}", h.getOrCreateSafe)
		r.Post("/api/safes/{safeID}/encrypt", h.encrypt)
		r.Post("/api/safes/{safeID}/decrypt", h.decrypt)
		r.Post("/api/safes/{safeID}/values/encrypt", h.encryptValues)
		r.Post("/api/safes/{safeID}/values/decrypt", h.decryptValues)
		r.Post("/api/mask", h.mask)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
