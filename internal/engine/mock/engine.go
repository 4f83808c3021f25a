// Package mock provides engine test doubles.
package mock

import (
	"context"

	"github.com/parley-labs/parley/pkg/models"
)

// Completer satisfies models.Completer for testing. CallCount records how
// many times Complete was invoked, letting tests assert that degraded
// paths perform no inference.
type Completer struct {
	Name_        string
	CompleteFunc func(ctx context.Context, req models.CompletionRequest) (string, error)
	CallCount    int
	LastRequest  models.CompletionRequest
}

func (c *Completer) Name() string { return c.Name_ }

func (c *Completer) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	c.CallCount++
	c.LastRequest = req
	if c.CompleteFunc != nil {
		return c.CompleteFunc(ctx, req)
	}
	return "mock reply", nil
}

// NewCompleter returns a Completer with a fixed default reply.
func NewCompleter() *Completer {
	return &Completer{Name_: "mock"}
}

// NewFailingCompleter returns a Completer that always returns the given error.
func NewFailingCompleter(err error) *Completer {
	return &Completer{
		Name_: "mock-failing",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return "", err
		},
	}
}

// Transcriber satisfies models.Transcriber for testing.
type Transcriber struct {
	Name_          string
	TranscribeFunc func(ctx context.Context, audioPath string) (string, error)
	CallCount      int
	LastPath       string
}

func (tr *Transcriber) Name() string { return tr.Name_ }

func (tr *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	tr.CallCount++
	tr.LastPath = audioPath
	if tr.TranscribeFunc != nil {
		return tr.TranscribeFunc(ctx, audioPath)
	}
	return "mock transcription", nil
}

// NewTranscriber returns a Transcriber with a fixed default transcript.
func NewTranscriber() *Transcriber {
	return &Transcriber{Name_: "mock"}
}

// NewFailingTranscriber returns a Transcriber that always returns the given error.
func NewFailingTranscriber(err error) *Transcriber {
	return &Transcriber{
		Name_: "mock-failing",
		TranscribeFunc: func(_ context.Context, _ string) (string, error) {
			return "", err
		},
	}
}

// Compile-time checks that the doubles implement the capability interfaces.
var (
	_ models.Completer   = (*Completer)(nil)
	_ models.Transcriber = (*Transcriber)(nil)
)
