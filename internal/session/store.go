// Package session keeps per-session conversation histories in memory for
// the lifetime of the process. Sessions are created lazily: appending to or
// reading an unknown id behaves like a fresh session rather than an error.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/parley-labs/parley/pkg/models"
)

// HistoryLimit caps retained messages per session. Once exceeded, the oldest
// entries are trimmed so the prompt stays inside the model context window.
const HistoryLimit = 20

// Store maps session ids to ordered message histories. Safe for concurrent
// use; concurrent turns on the same session id are not ordered relative to
// each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]models.Message
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]models.Message)}
}

// Start allocates a fresh session id with an empty history.
func (s *Store) Start() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = nil
	return id
}

// History returns a copy of the session history in conversation order.
// Unknown ids yield an empty history.
func (s *Store) History(id string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.sessions[id]
	out := make([]models.Message, len(history))
	copy(out, history)
	return out
}

// Append adds a message to the session, trimming from the front once the
// history exceeds HistoryLimit. Relative order of retained messages is
// preserved.
func (s *Store) Append(id string, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], msg)
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}
	s.sessions[id] = history
}

// Reset replaces the session history wholesale, reinitializing the session
// with the given messages.
func (s *Store) Reset(id string, history []models.Message) {
	msgs := make([]models.Message, len(history))
	copy(msgs, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = msgs
}
