// Package transcription defines the speech-to-text contract shared by the
// gateway and deepgram clients.
package transcription

import (
	"errors"
	"time"
)

// ErrNoSpeechDetected means the service answered but recognized nothing.
// Distinct from a transport-level failure: the orchestrator prompts the user
// to repeat instead of apologizing for a service problem.
var ErrNoSpeechDetected = errors.New("no speech detected")

// Utterance is a user's spoken input after speech-to-text conversion.
type Utterance struct {
	Text         string
	RecognizedAt time.Time
}

type TranscriptionOptions struct {
	Model    string
	Language string
}

type TranscriptionOption func(*TranscriptionOptions)

func WithModel(model string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Model = model
	}
}

func WithLanguage(language string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Language = language
	}
}
