package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/betalabs/feedback-intake/internal/api/apierr"
	"github.com/betalabs/feedback-intake/internal/api/middleware"
	"github.com/betalabs/feedback-intake/internal/api/request"
	"github.com/betalabs/feedback-intake/internal/api/response"
	"github.com/betalabs/feedback-intake/internal/services/auth"
)

// AuthHandler handles login, logout and status endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username and password required"))
		return
	}

	session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	setSessionCookie(w, session.Token, session.ExpiresAt)
	response.JSON(w, http.StatusOK, response.LoginResponse{
		Message:   "Login successful",
		Username:  session.Username,
		SessionID: session.Token,
	})
}

// Logout handles POST /logout. Idempotent: succeeds with or without a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.ExtractToken(r); token != "" {
		h.authService.Logout(token)
	}

	clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.LogoutResponse{
		Message: "Logout successful",
	})
}

// Status handles GET /status. A pure read; never fails.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	authenticated, username := h.authService.Status(middleware.ExtractToken(r))
	response.JSON(w, http.StatusOK, response.StatusResponse{
		Authenticated: authenticated,
		Username:      username,
	})
}

func setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
