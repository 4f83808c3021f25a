// Package chat orchestrates conversational completions over the session
// store and the completion engine.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/parley-labs/parley/internal/engine"
	"github.com/parley-labs/parley/internal/session"
	"github.com/parley-labs/parley/pkg/models"
	"github.com/parley-labs/parley/pkg/prompt"
)

const (
	// disabledNotice is returned by stateless chat when generation is off.
	// Session endpoints fail hard instead; see StartSession and Converse.
	disabledNotice = "The chat model is disabled in configuration. Please enable it to use this feature."
	// emptyReply stands in for a completion that came back blank.
	emptyReply = "I'm sorry, I couldn't generate a response."
	greeting   = "Conversation started. Hello! How can I help you today?"
)

// Service generates assistant replies. The completer may be nil when chat
// is disabled or the engine failed to initialize.
type Service struct {
	completer models.Completer
	sessions  *session.Store
	defaults  models.GenerationParams
}

func NewService(completer models.Completer, sessions *session.Store, defaults models.GenerationParams) *Service {
	return &Service{
		completer: completer,
		sessions:  sessions,
		defaults:  defaults,
	}
}

// Chat answers a single message without keeping any session state. When the
// completer is unavailable it degrades to a fixed advisory string rather
// than failing.
func (s *Service) Chat(ctx context.Context, message string, params models.GenerationParams) (string, error) {
	if s.completer == nil {
		return disabledNotice, nil
	}
	history := []models.Message{{Role: models.RoleUser, Content: message}}
	return s.complete(ctx, history, params)
}

// StartSession allocates a fresh session and returns its id with a greeting.
func (s *Service) StartSession(_ context.Context) (string, string, error) {
	if s.completer == nil {
		return "", "", engine.ErrCompleterUnavailable
	}
	id := s.sessions.Start()
	slog.Info("conversation started", "session_id", id)
	return id, greeting, nil
}

// Converse appends the incoming user turns to the session history,
// generates the next assistant turn from the (possibly trimmed) history and
// records it. Concurrent turns on the same session are not ordered.
func (s *Service) Converse(ctx context.Context, sessionID string, incoming []models.Message, params models.GenerationParams) (string, error) {
	if s.completer == nil {
		return "", engine.ErrCompleterUnavailable
	}

	for _, msg := range incoming {
		s.sessions.Append(sessionID, msg)
	}

	reply, err := s.complete(ctx, s.sessions.History(sessionID), params)
	if err != nil {
		return "", err
	}

	s.sessions.Append(sessionID, models.Message{Role: models.RoleAssistant, Content: reply})
	return reply, nil
}

func (s *Service) complete(ctx context.Context, history []models.Message, params models.GenerationParams) (string, error) {
	if params.MaxTokens <= 0 {
		params.MaxTokens = s.defaults.MaxTokens
	}
	if params.Temperature <= 0 {
		params.Temperature = s.defaults.Temperature
	}

	reply, err := s.completer.Complete(ctx, models.CompletionRequest{
		Prompt:      prompt.Build(history),
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		Stop:        []string{prompt.StopSequence},
	})
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		slog.Warn("completion returned empty text", "engine", s.completer.Name())
		return emptyReply, nil
	}
	return reply, nil
}
