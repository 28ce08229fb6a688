// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shodbyed/cueleague/internal/api"
	"github.com/shodbyed/cueleague/internal/api/matches"
	"github.com/shodbyed/cueleague/internal/api/players"
	"github.com/shodbyed/cueleague/internal/api/seasons"
	"github.com/shodbyed/cueleague/internal/config"
	"github.com/shodbyed/cueleague/internal/ratelimit"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Schedule regeneration is expensive; throttle repeated requests.
	limiter := ratelimit.New(nil)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Season routes
	mux.HandleFunc("POST /api/v1/seasons", seasons.HandleCreateSeason)
	mux.HandleFunc("GET /api/v1/seasons/{id}", seasons.HandleGetSeason)
	mux.HandleFunc("GET /api/v1/seasons/{id}/schedule", seasons.HandleListSchedule)
	mux.HandleFunc("POST /api/v1/seasons/{id}/schedule/generate", ratelimit.Middleware(limiter, seasons.HandleGenerateSchedule))
	mux.HandleFunc("POST /api/v1/seasons/{id}/schedule/preview", seasons.HandlePreviewSchedule)
	mux.HandleFunc("POST /api/v1/seasons/{id}/blackouts", ratelimit.Middleware(limiter, seasons.HandleAddBlackout))
	mux.HandleFunc("DELETE /api/v1/seasons/{id}/blackouts/{blackout_id}", ratelimit.Middleware(limiter, seasons.HandleRemoveBlackout))
	mux.HandleFunc("GET /api/v1/seasons/{id}/standings", seasons.HandleStandings)
	mux.HandleFunc("POST /api/v1/seasons/{id}/matchups/generate", ratelimit.Middleware(limiter, matches.HandleGenerateMatchups))

	// Player routes
	mux.HandleFunc("POST /api/v1/players", players.HandleCreatePlayer)
	mux.HandleFunc("GET /api/v1/players/{id}/handicap", players.HandleGetHandicap)

	// Match routes
	mux.HandleFunc("POST /api/v1/matches/{id}/differential", matches.HandleDifferential)
}
