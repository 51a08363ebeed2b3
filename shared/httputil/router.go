package httputil

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/shared/middleware"
)

// healthCheckTimeout bounds the database ping behind /healthz.
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewRouter creates a chi router with the middleware stack shared by all
// services and a /healthz route backed by pinger.
func NewRouter(logger *zerolog.Logger, allowedOrigins []string, pinger Pinger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", HealthHandler(logger, pinger))

	return r
}

// HealthHandler answers 200 when pinger succeeds and 503 otherwise.
func HealthHandler(logger *zerolog.Logger, pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("health check failed")
			WriteJSON(w, logger, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}

		WriteJSON(w, logger, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
