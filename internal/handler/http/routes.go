package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, "Location"},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.apiStatus)
	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/generate", h.generate)
	router.Get("/api/user/{userId}/qrcodes", h.listByUser)

	router.Get("/api/qr/{qrCodeId}", h.redirect)
	router.Put("/api/qr/{qrCodeId}", h.update)
	router.Delete("/api/qr/{qrCodeId}", h.delete)
	router.Get("/api/qr/{qrCodeId}/image", h.image)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
