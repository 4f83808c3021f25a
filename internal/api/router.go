package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/parley-labs/parley/internal/api/middleware"
	"github.com/parley-labs/parley/internal/api/response"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	HealthHandler              http.HandlerFunc
	ChatHandler                http.HandlerFunc
	StartConversationHandler   http.HandlerFunc
	ConversationHandler        http.HandlerFunc
	TranscribeHandler          http.HandlerFunc
	TranscriptionStatusHandler http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	r.Post("/api/v1/chat", orNotImplemented(deps.ChatHandler))
	r.Post("/api/v1/conversation", orNotImplemented(deps.StartConversationHandler))
	r.Post("/api/v1/conversation/{sessionID}", orNotImplemented(deps.ConversationHandler))

	r.Post("/api/v1/transcribe", orNotImplemented(deps.TranscribeHandler))
	r.Get("/api/v1/transcribe/status/{taskID}", orNotImplemented(deps.TranscriptionStatusHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
