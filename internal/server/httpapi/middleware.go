package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/avdeevs/exercisebox/internal/server/auth"
)

type contextKey int

const (
	userIDKey contextKey = iota
	usernameKey
)

// UserID returns the verified user id the gate stored in ctx, or "".
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Username returns the verified username the gate stored in ctx, or "".
func Username(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// authenticate is the request gate for protected routes. It requires an exact
// "Bearer <token>" Authorization header, verifies the access token against
// the access secret, and injects the verified identity into the request
// context. It performs no store I/O.
func authenticate(accessSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			claims, err := auth.ParseAccessToken(strings.TrimPrefix(header, "Bearer "), accessSecret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
