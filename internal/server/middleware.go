package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/atlasd/internal/logging"
)

// requestIDHeader carries the per-request ULID back to the caller.
const requestIDHeader = "X-Request-Id"

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogMiddleware tags each request with a ULID id, embeds a request
// logger in the context, and writes one access log line per request.
func requestLogMiddleware(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logging.NewTraceID()

		reqLogger := logger.With().Str("request_id", requestID).Logger()
		ctx := reqLogger.WithContext(r.Context())
		ctx = logging.ContextWithTraceID(ctx, requestID)

		w.Header().Set(requestIDHeader, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		reqLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// corsMiddleware adds the permissive cross-origin headers that let a
// separately served client call the API. Preflight OPTIONS requests are
// answered here and never reach the mux.
func corsMiddleware(next http.Handler, allowedOrigin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allowedOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
