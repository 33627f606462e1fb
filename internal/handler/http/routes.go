package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/api/version/", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

		r.Get("/sum/query", h.sumQuery)
		r.Post("/sum/body", h.sumBody)
		r.Get("/sum/header", h.sumHeader)
	})

	// routes that check credentials
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.With(h.apiKeyHeaderAuth).Get("/auth/api-key-header", h.authAPIKeyHeader)
		r.With(h.apiKeyQueryAuth).Get("/auth/api-key-query", h.authAPIKeyQuery)
		r.With(h.bearerAuth).Post("/auth/bearer", h.authBearer)
		r.With(h.basicAuth).Post("/auth/basic", h.authBasic)

		r.With(h.apiKeyHeaderAuth).Post("/combined/all-methods", h.combinedAllMethods)

		r.Post("/token", h.issueToken)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
