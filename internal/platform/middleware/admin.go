package middleware

import (
	"log/slog"
	"net/http"

	"nidx/pkg/secrets"
)

// RequireAdminToken guards admin routes with a shared X-Admin-Token header.
// The expected token is configured as a bcrypt hash so the plaintext never
// lives in the environment of the running process.
func RequireAdminToken(expectedHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if token == "" || secrets.Verify(token, expectedHash) != nil {
				logger.WarnContext(r.Context(), "admin token mismatch",
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"admin token required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
