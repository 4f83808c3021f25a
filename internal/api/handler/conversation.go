package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/parley-labs/parley/internal/api/response"
	"github.com/parley-labs/parley/internal/engine"
	"github.com/parley-labs/parley/pkg/models"
)

// Converser is the interface the conversation handlers depend on.
type Converser interface {
	StartSession(ctx context.Context) (id, greeting string, err error)
	Converse(ctx context.Context, sessionID string, incoming []models.Message, params models.GenerationParams) (string, error)
}

// NewStartConversationHandler returns an http.HandlerFunc for
// POST /api/v1/conversation. Unlike /chat, session endpoints fail with 503
// when generation is disabled instead of degrading to advisory text.
func NewStartConversationHandler(svc Converser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, greeting, err := svc.StartSession(r.Context())
		if err != nil {
			writeConverseError(w, err)
			return
		}

		response.JSON(w, conversationResponse{
			Response:  greeting,
			SessionID: id,
		})
	}
}

// NewConversationHandler returns an http.HandlerFunc for
// POST /api/v1/conversation/{sessionID}. Unknown session ids are treated as
// fresh sessions, not errors.
func NewConversationHandler(svc Converser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")

		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		if len(req.Messages) == 0 {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "messages is required", nil)
			return
		}
		if req.MaxTokens < 0 {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "max_tokens must be non-negative", nil)
			return
		}
		if req.Temperature < 0 {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "temperature must be non-negative", nil)
			return
		}

		incoming := make([]models.Message, 0, len(req.Messages))
		for _, m := range req.Messages {
			if m.Role != models.RoleUser && m.Role != models.RoleAssistant {
				response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
					"role must be user or assistant", nil)
				return
			}
			if strings.TrimSpace(m.Content) == "" {
				response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
					"message content must not be empty", nil)
				return
			}
			incoming = append(incoming, models.Message{Role: m.Role, Content: m.Content})
		}

		reply, err := svc.Converse(r.Context(), sessionID, incoming, models.GenerationParams{
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		})
		if err != nil {
			writeConverseError(w, err)
			return
		}

		response.JSON(w, conversationResponse{Response: reply})
	}
}

func writeConverseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrCompleterUnavailable):
		response.Error(w, http.StatusServiceUnavailable, "ENGINE_UNAVAILABLE",
			"The chat model is not available", nil)
	default:
		response.Error(w, http.StatusBadGateway, "ENGINE_ERROR",
			"Failed to generate response", err.Error())
	}
}

type conversationResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}
