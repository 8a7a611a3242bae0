// Package microphone records bounded-duration audio samples from an audio
// input backend (miniaudio or portaudio) and wraps them as WAV.
package microphone

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riteshh/seeforme-core/core/audio"
	"github.com/riteshh/seeforme-core/core/capture"
)

// AudioInput is the slice of an audio backend the recorder needs.
type AudioInput interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
	EncodingInfo() audio.EncodingInfo
}

// minSampleMs rejects recordings too short to plausibly contain speech.
const minSampleMs = 100

type Recorder struct {
	input AudioInput

	mu        sync.Mutex
	recording bool
}

func NewRecorder(input AudioInput) *Recorder {
	return &Recorder{input: input}
}

// Record captures microphone audio until maxDuration elapses or ctx is
// cancelled (an explicit stop), whichever comes first. A sample shorter than
// the plausible minimum fails with capture.ErrCaptureFailed; no retries here.
func (r *Recorder) Record(ctx context.Context, maxDuration time.Duration) (capture.AudioSample, error) {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return capture.AudioSample{}, fmt.Errorf("%w: recorder busy", capture.ErrCaptureFailed)
	}
	r.recording = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.recording = false
		r.mu.Unlock()
	}()

	var (
		pcmMu sync.Mutex
		pcm   []byte
	)
	startedAt := time.Now()

	captureCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := r.input.StartCapture(captureCtx, func(chunk []byte) {
		pcmMu.Lock()
		pcm = append(pcm, chunk...)
		pcmMu.Unlock()
	}); err != nil {
		return capture.AudioSample{}, fmt.Errorf("%w: microphone unavailable: %v", capture.ErrCaptureFailed, err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(maxDuration):
	}

	if err := r.input.StopCapture(); err != nil {
		return capture.AudioSample{}, fmt.Errorf("%w: stopping microphone: %v", capture.ErrCaptureFailed, err)
	}

	encoding := r.input.EncodingInfo()
	pcmMu.Lock()
	recorded := make([]byte, len(pcm))
	copy(recorded, pcm)
	pcmMu.Unlock()

	durationMs := encoding.DurationMs(len(recorded))
	if durationMs < minSampleMs {
		return capture.AudioSample{}, fmt.Errorf("%w: sample too short (%dms)", capture.ErrCaptureFailed, durationMs)
	}

	return capture.AudioSample{
		WAV:        audio.EncodeWAV(recorded, encoding, 1),
		Duration:   time.Duration(durationMs) * time.Millisecond,
		RecordedAt: startedAt,
	}, nil
}
