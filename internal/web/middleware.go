package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/erooms-in/erooms/internal/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// requireUser validates the Bearer token and puts the session user on
// the request context.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apiError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		user, err := s.sessions.Verify(token)
		if err != nil {
			apiError(w, "invalid session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole restricts a subtree to users with the given role.
func (s *Server) requireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userFrom(r)
			if !ok || user.Role != role {
				apiError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// userFrom returns the session user placed on the context by requireUser.
func userFrom(r *http.Request) (auth.User, bool) {
	user, ok := r.Context().Value(userContextKey).(auth.User)
	return user, ok
}
