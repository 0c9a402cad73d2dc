package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/services"
)

// SessionCookieName is the cookie carrying the visitor's session id
const SessionCookieName = "storefront_session"

// RememberMeDuration is how long a remembered sign-in cookie lives
const RememberMeDuration = 30 * 24 * time.Hour

type sessionKey struct{}

// WithSession resolves the visitor's session from its cookie, issuing a new
// session and cookie when the cookie is missing or stale
func WithSession(sessions services.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				id = c.Value
			}

			session := sessions.Resolve(id)
			if session.ID != id {
				setSessionCookie(w, session.ID, 0)
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session resolved by WithSession
func SessionFrom(r *http.Request) *models.Session {
	if s, ok := r.Context().Value(sessionKey{}).(*models.Session); ok {
		return s
	}
	return &models.Session{}
}

func setSessionCookie(w http.ResponseWriter, id string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
