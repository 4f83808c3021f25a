// Package transcribe accepts audio uploads and runs transcription jobs in
// the background so the request path never blocks on inference.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/parley-labs/parley/internal/engine"
	"github.com/parley-labs/parley/internal/registry"
	"github.com/parley-labs/parley/pkg/models"
)

// Service persists uploads to a scratch directory and tracks each
// transcription as a job in the registry. The transcriber may be nil when
// no configured provider can transcribe; submitted jobs then fail
// immediately instead of being rejected up front, keeping the submit/poll
// contract uniform.
type Service struct {
	transcriber models.Transcriber
	registry    *registry.Registry
	uploadDir   string
}

func NewService(transcriber models.Transcriber, reg *registry.Registry, uploadDir string) *Service {
	return &Service{
		transcriber: transcriber,
		registry:    reg,
		uploadDir:   uploadDir,
	}
}

// Submit writes the uploaded audio to the scratch dir, registers a job in
// processing state and schedules transcription off the request path. It
// returns the job id immediately; callers poll Status for the outcome.
func (s *Service) Submit(filename string, r io.Reader) (uuid.UUID, error) {
	id := uuid.New()
	scratch := filepath.Join(s.uploadDir, id.String()+filepath.Ext(filename))

	out, err := os.Create(scratch)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create scratch file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(scratch)
		return uuid.Nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(scratch)
		return uuid.Nil, fmt.Errorf("close scratch file: %w", err)
	}

	if err := s.registry.Create(id); err != nil {
		_ = os.Remove(scratch)
		return uuid.Nil, fmt.Errorf("registering job: %w", err)
	}

	slog.Info("upload accepted", "job_id", id, "path", scratch)
	go s.run(id, scratch)

	return id, nil
}

// Status returns a snapshot of the job.
func (s *Service) Status(id uuid.UUID) (*models.Job, error) {
	return s.registry.Get(id)
}

// run performs the blocking transcription in a background goroutine. It
// recovers from panics and always leaves the job in a terminal state; the
// scratch file is removed on every exit path.
func (s *Service) run(id uuid.UUID, audioPath string) {
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			slog.Error("scratch cleanup failed", "job_id", id, "path", audioPath, "error", err)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in transcription job", "job_id", id, "error", r)
			_ = s.registry.Fail(id, fmt.Sprintf("panic: %v", r))
		}
	}()

	if s.transcriber == nil {
		_ = s.registry.Fail(id, engine.ErrTranscriberUnavailable.Error())
		return
	}

	slog.Info("transcription started", "job_id", id)
	text, err := s.transcriber.Transcribe(context.Background(), audioPath)
	if err != nil {
		slog.Error("transcription failed", "job_id", id, "error", err)
		if err := s.registry.Fail(id, err.Error()); err != nil {
			slog.Error("job update failed", "job_id", id, "error", err)
		}
		return
	}

	if err := s.registry.Complete(id, text); err != nil {
		slog.Error("job update failed", "job_id", id, "error", err)
		return
	}
	slog.Info("transcription completed", "job_id", id)
}
