package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// Job tracks an async transcription unit of work. POST /api/v1/transcribe
// returns the job id; the client polls GET /api/v1/transcribe/status/{id}
// until status is completed or failed. A job leaves processing exactly once
// and is never deleted (eviction is an operator concern).
type Job struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	Transcription *string   `json:"transcription,omitempty"`
	Error         *string   `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Terminal reports whether the job has finished, successfully or not.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
