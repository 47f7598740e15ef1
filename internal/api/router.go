package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/betalabs/feedback-intake/internal/api/handler"
	apimiddleware "github.com/betalabs/feedback-intake/internal/api/middleware"
	"github.com/betalabs/feedback-intake/internal/middleware"
	"github.com/betalabs/feedback-intake/internal/services/auth"
	"github.com/betalabs/feedback-intake/internal/services/submission"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SubmissionService *submission.Service

	// RequireAuthForFeedback guards the feedback routes with the session
	// middleware. Off by default: the upstream intake was public, so
	// guarding is an explicit deployment decision.
	RequireAuthForFeedback bool
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	feedbackHandler := handler.NewFeedbackHandler(cfg.SubmissionService)

	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(cfg.Logger))

	// Auth surface (never guarded)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	r.HandleFunc("/status", authHandler.Status).Methods(http.MethodGet)

	// Feedback surface
	feedback := r.PathPrefix("/feedback").Subrouter()
	if cfg.RequireAuthForFeedback {
		feedback.Use(apimiddleware.RequireAuth(cfg.AuthService))
	}
	feedback.HandleFunc("", feedbackHandler.Submit).Methods(http.MethodPost)
	feedback.HandleFunc("", feedbackHandler.List).Methods(http.MethodGet)
	feedback.HandleFunc("/{id:[0-9]+}", feedbackHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
