// Package capture defines the contracts for acquiring still frames from a
// camera and bounded audio samples from a microphone. Backends fail with
// ErrCaptureFailed and never retry; retry policy belongs to the orchestrator.
package capture

import (
	"errors"
	"time"
)

var ErrCaptureFailed = errors.New("capture failed")

// MinFrameBytes rejects blank or black frames: anything smaller than this is
// not a plausible JPEG of a real scene.
const MinFrameBytes = 1000

// Frame is a single encoded still image from the camera feed. It is owned
// transiently by the orchestrator for one vision call and discarded after.
type Frame struct {
	Bytes      []byte
	CapturedAt time.Time
}

// AudioSample is a bounded-duration recording from the microphone, wrapped as
// WAV so it can be posted to transcription services directly.
type AudioSample struct {
	WAV        []byte
	Duration   time.Duration
	RecordedAt time.Time
}
