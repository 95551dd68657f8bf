package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

// WithLogger adds a logger derived from base to the context and logs request
// information. An inbound X-Request-ID is reused, otherwise one is generated.
func WithLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestID := r.Header.Get(RequestIDHeader)
				if requestID == "" {
					requestID = uuid.NewString()
				}
				w.Header().Set(RequestIDHeader, requestID)

				logger := base.With().
					Str("request_id", requestID).
					Str("host", r.Host).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote_addr", r.RemoteAddr).
					Time("timestamp", time.Now()).
					Logger()

				logger.Debug().Msg("request received")

				// Add the logger to the context
				ctx := logger.WithContext(r.Context())
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
