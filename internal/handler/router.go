package handler

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/suar-net/summaries/internal/config"
)

// SetupRouter creates the main Chi router for the application.
// The summary service and logger are injected into the handlers.
func SetupRouter(s SummaryService, corsCfg config.CORSConfig, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Credentials cannot be combined with a wildcard origin.
	allowCredentials := true
	for _, origin := range corsCfg.AllowedOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: allowCredentials,
		MaxAge:           300, // Maximum value not ignored by any major browser
	}))

	healthHandler := NewHealthHandler()
	summaryHandler := NewSummaryHandler(s, logger)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Check)
	r.Post("/summaries", summaryHandler.Create)

	return r
}
