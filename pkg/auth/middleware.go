package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrUnauthorized is returned when a request carries no valid session.
var ErrUnauthorized = errors.New("unauthorized")

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated user ID from ctx.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// WithUserID stores userID in ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// SessionValidator resolves a session token to a user ID.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// RequireAuth rejects requests without a valid session cookie and puts the
// user ID into the request context.
func RequireAuth(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil || cookie.Value == "" {
				writeUnauthorized(w, "unauthorized")
				return
			}

			userID, err := validator.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				writeUnauthorized(w, "invalid_session")
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
