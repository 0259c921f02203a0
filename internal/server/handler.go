package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type handlers struct {
	service Service
	logger  Logger
}

func newHandler(service Service, logger Logger, corsEnabled bool) http.Handler {
	handlers := &handlers{
		service: service,
		logger:  logger,
	}

	router := chi.NewRouter()

	router.Use(middleware.Recoverer, middleware.CleanPath, makeLogMiddleware(logger))
	if corsEnabled {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	router.Get("/", handlers.index)
	router.Post("/validate", handlers.validate)
	router.Post("/convert", handlers.convert)
	router.Post("/geolocate", handlers.geolocate)

	return router
}
