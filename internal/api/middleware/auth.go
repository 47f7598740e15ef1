package middleware

import (
	"net/http"
	"strings"

	"github.com/betalabs/feedback-intake/internal/api/apierr"
	"github.com/betalabs/feedback-intake/internal/services/auth"
)

// SessionCookieName is the cookie the session token is carried in
const SessionCookieName = "session"

// RequireAuth creates middleware that rejects unauthenticated requests.
// Whether the feedback routes are wrapped with it is a router configuration
// choice; the login/logout/status surface never is.
func RequireAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if _, err := authService.ValidateSession(token); err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ExtractToken extracts the session token from the request: Authorization
// bearer header first, session cookie as fallback
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}
