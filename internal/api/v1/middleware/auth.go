package middleware

import (
	"net/http"

	"github.com/HexaCluster/pg-summarize/internal/services/auth"
	"github.com/HexaCluster/pg-summarize/pkg/httpext"
)

// RequireAuth guards a handler with bearer JWT auth. When no JWT secret
// is configured the middleware passes everything through, so single-user
// deployments work out of the box.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := auth.ExtractToken(r)
		if tokenString == "" {
			httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !auth.ValidateToken(tokenString) {
			httpext.JsonError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
