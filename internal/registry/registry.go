// Package registry tracks transcription jobs for the submit-then-poll
// workflow. State is process-lifetime only; nothing survives a restart.
package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parley-labs/parley/pkg/models"
)

var (
	ErrNotFound    = errors.New("job not found")
	ErrDuplicateID = errors.New("duplicate job id")
	// ErrTerminal is returned when a second terminal transition is attempted.
	// Each job has exactly one background writer, so hitting this is a
	// programming error, not an expected runtime condition.
	ErrTerminal = errors.New("job already in terminal state")
)

// Registry is an in-memory job store safe for concurrent use. One writer
// per job id (the background task processing it), many readers (pollers).
type Registry struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.Job
}

func New() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]*models.Job)}
}

// Create inserts a new job in processing state.
func (r *Registry) Create(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; exists {
		return ErrDuplicateID
	}

	now := time.Now().UTC()
	r.jobs[id] = &models.Job{
		ID:        id,
		Status:    models.JobStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

// Complete transitions a processing job to completed with its transcription.
func (r *Registry) Complete(id uuid.UUID, transcription string) error {
	return r.finish(id, models.JobStatusCompleted, &transcription, nil)
}

// Fail transitions a processing job to failed with a human-readable message.
func (r *Registry) Fail(id uuid.UUID, message string) error {
	return r.finish(id, models.JobStatusFailed, nil, &message)
}

func (r *Registry) finish(id uuid.UUID, status string, transcription, errMsg *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return ErrNotFound
	}
	if job.Terminal() {
		return ErrTerminal
	}

	job.Status = status
	job.Transcription = transcription
	job.Error = errMsg
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// Get returns a snapshot of the job. It never blocks on in-flight work.
func (r *Registry) Get(id uuid.UUID) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, ErrNotFound
	}

	snapshot := *job
	return &snapshot, nil
}
