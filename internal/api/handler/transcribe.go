package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/parley-labs/parley/internal/api/response"
	"github.com/parley-labs/parley/internal/registry"
	"github.com/parley-labs/parley/pkg/models"
)

// Transcriptions is the interface the transcription handlers depend on.
type Transcriptions interface {
	Submit(filename string, r io.Reader) (uuid.UUID, error)
	Status(id uuid.UUID) (*models.Job, error)
}

// NewTranscribeHandler returns an http.HandlerFunc for POST /api/v1/transcribe.
// The declared content type must be audio/*; rejected uploads never touch
// the scratch directory.
func NewTranscribeHandler(svc Transcriptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
				"A multipart file field named 'file' is required", nil)
			return
		}
		defer func() {
			_ = file.Close()
		}()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "audio/") {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE_TYPE",
				"Invalid file type. Only audio files are allowed.", nil)
			return
		}

		id, err := svc.Submit(header.Filename, file)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to process file", err.Error())
			return
		}

		response.Accepted(w, jobStatusResponse{
			ID:     id.String(),
			Status: models.JobStatusProcessing,
		})
	}
}

// NewTranscriptionStatusHandler returns an http.HandlerFunc for
// GET /api/v1/transcribe/status/{taskID}.
func NewTranscriptionStatusHandler(svc Transcriptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Malformed ids can't name a job, so they read as unknown.
		id, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			response.Error(w, http.StatusNotFound, "JOB_NOT_FOUND",
				"Transcription task not found", nil)
			return
		}

		job, err := svc.Status(id)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "JOB_NOT_FOUND",
					"Transcription task not found", nil)
				return
			}
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, jobStatusResponse{
			ID:            job.ID.String(),
			Status:        job.Status,
			Transcription: job.Transcription,
			Error:         job.Error,
		})
	}
}

type jobStatusResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Transcription *string `json:"transcription,omitempty"`
	Error         *string `json:"error,omitempty"`
}
