// Package handler holds the HTTP handlers. Each handler depends on a small
// interface so services can be swapped for doubles in tests.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/parley-labs/parley/internal/api/response"
	"github.com/parley-labs/parley/pkg/models"
)

// Chatter is the interface the chat handler depends on.
type Chatter interface {
	Chat(ctx context.Context, message string, params models.GenerationParams) (string, error)
}

// NewChatHandler returns an http.HandlerFunc for POST /api/v1/chat.
// Stateless: nothing is kept between calls.
func NewChatHandler(svc Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "message is required", nil)
			return
		}

		reply, err := svc.Chat(r.Context(), req.Message, models.GenerationParams{})
		if err != nil {
			response.Error(w, http.StatusBadGateway, "ENGINE_ERROR",
				"Failed to generate response", err.Error())
			return
		}

		response.JSON(w, chatResponse{Response: reply})
	}
}

type chatResponse struct {
	Response string `json:"response"`
}
