package middleware

import (
	"log/slog"
	"net/http"
)

// AuditLog records which token subject called an admin endpoint. It must run
// after Authenticate.
func AuditLog(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := GetSubjectFromContext(r.Context())
			if err != nil {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			logger.InfoContext(r.Context(), "admin request",
				slog.String("subject", subject),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			next.ServeHTTP(w, r)
		})
	}
}
