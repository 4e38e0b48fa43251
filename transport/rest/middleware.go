package rest

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userContextKey contextKey = "user"

// WithAuth requires a valid bearer token, resolves the user it was issued
// for and stores the user in the request context.
func (that *handlers) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			that.respondError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		userID, err := that.auth.ParseToken(token)
		if err != nil {
			that.respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := that.users.GetByID(r.Context(), userID)
		if err != nil {
			that.respondError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}
