package middleware

import (
	"context"
	"net/http"

	"preloved-backend/config"
	"preloved-backend/internal/domain"
	"preloved-backend/internal/session"
)

const (
	// SessionHeader carries the browsing session ID. A missing or empty
	// header starts a fresh session; the issued ID is echoed back so the
	// client can persist it.
	SessionHeader = "X-Session-ID"

	// UserHeader is the identity stub. A real identity collaborator would
	// replace this with authenticated session handling.
	UserHeader = "X-User-ID"
)

// SessionMiddleware resolves the browsing session and acting user for the
// request and stores both identifiers in the context.
func SessionMiddleware(sessions *session.Manager, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = sessions.NewID()
			}
			w.Header().Set(SessionHeader, sessionID)

			userID := r.Header.Get(UserHeader)
			if userID == "" {
				userID = cfg.DefaultUserID
			}

			ctx := context.WithValue(r.Context(), domain.SessionContextKey, sessionID)
			ctx = context.WithValue(ctx, domain.UserContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session ID resolved by SessionMiddleware.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(domain.SessionContextKey).(string)
	return id
}

// UserID returns the acting user resolved by SessionMiddleware.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(domain.UserContextKey).(string)
	return id
}
