package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Paths reachable without a token. Invite resolution by code is public so
// join flows that only hold a code can use it.
var publicPaths = map[string]bool{
	"/api/invite/findInviteByCode": true,
	"/healthz":                     true,
}

// AuthMiddleware checks the Bearer token on every request, validates the jwt
// and injects the acting user id into the request context before the handler
// runs.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		vals := r.Header.Get("Authorization")
		if vals == "" {
			WriteError(w, Wrap(ErrForbidden, "authorization required"))
			return
		}

		// vals = Bearer <token>
		parts := strings.Fields(vals)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			WriteError(w, Wrap(ErrForbidden, "invalid auth header"))
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			WriteError(w, Wrap(ErrForbidden, "invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext extracts the acting user id injected by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok
}

// ContextWithUserID is used by tests and wiring to fake an authenticated
// caller.
func ContextWithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
