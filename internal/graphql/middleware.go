package graphql

import (
	"net/http"
	"strings"

	"github.com/merqado/storefront/pkg/auth"
)

// AuthMiddleware attaches the bearer identity to the request context when a
// valid token is present. Requests without a usable token proceed
// anonymously; the per-resolver guards decide what anonymous callers may
// see.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			// Expired or forged tokens degrade to anonymous; the
			// guard failure is what signals session expiry.
			next.ServeHTTP(w, r)
			return
		}

		viewer := &Viewer{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}
		next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), viewer)))
	})
}
