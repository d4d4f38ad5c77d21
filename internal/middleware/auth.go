// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/creatorbasehq/creatorbase/internal/auth"
	"github.com/google/uuid"
)

type userContextKey string

// UserIDKey is the context key under which the authenticated user id is
// stored.
var UserIDKey userContextKey = "creatorbase_user_id"

// RequireSession validates the bearer session token and rejects requests
// without a usable identity.
func RequireSession(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessionUserID(tokenManager, r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Invalid or missing session token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession resolves a session when one is presented and lets
// anonymous requests through untouched; handlers that need identity raise
// Unauthorized themselves.
func OptionalSession(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := sessionUserID(tokenManager, r); ok {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionUserID returns the authenticated user id from the request context.
func SessionUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func sessionUserID(tokenManager *auth.TokenManager, r *http.Request) (uuid.UUID, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	claims, err := tokenManager.Validate(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
