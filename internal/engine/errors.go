package engine

import "errors"

var (
	// ErrCompleterUnavailable means the text-generation capability is
	// disabled or was never configured, as opposed to a runtime failure.
	ErrCompleterUnavailable = errors.New("completion engine unavailable")
	// ErrTranscriberUnavailable means no configured provider can transcribe.
	ErrTranscriberUnavailable = errors.New("transcription engine unavailable")
)
