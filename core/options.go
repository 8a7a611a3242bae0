package orchestration

import (
	"context"
	"time"

	"github.com/riteshh/seeforme-core/core/capture"
	"github.com/riteshh/seeforme-core/core/events"
	"github.com/riteshh/seeforme-core/core/refinement"
	"github.com/riteshh/seeforme-core/core/transcription"
	"github.com/riteshh/seeforme-core/core/vision"
)

type OrchestratorOption func(*Orchestrator)

type TranscriptionClient interface {
	Transcribe(ctx context.Context, audio []byte, opts ...transcription.TranscriptionOption) (transcription.Utterance, error)
}

func WithTranscriptionClient(client TranscriptionClient) OrchestratorOption {
	return func(o *Orchestrator) { o.transcription.set(client) }
}

type VisionClient interface {
	Analyze(ctx context.Context, frame []byte, query string, opts ...vision.AnalysisOption) (string, error)
}

func WithVisionClient(client VisionClient) OrchestratorOption {
	return func(o *Orchestrator) { o.vision.set(client) }
}

type RefinementClient interface {
	Refine(ctx context.Context, sourceText, originalQuery string, queryType refinement.QueryType) string
}

func WithRefinementClient(client RefinementClient) OrchestratorOption {
	return func(o *Orchestrator) { o.refinement.set(client) }
}

type Camera interface {
	AcquireFrame(ctx context.Context) (capture.Frame, error)
}

func WithCamera(camera Camera) OrchestratorOption {
	return func(o *Orchestrator) { o.camera.set(camera) }
}

type Recorder interface {
	Record(ctx context.Context, maxDuration time.Duration) (capture.AudioSample, error)
}

func WithRecorder(recorder Recorder) OrchestratorOption {
	return func(o *Orchestrator) { o.recorder.set(recorder) }
}

type Speaker interface {
	Speak(ctx context.Context, text string) error
	Stop() error
}

func WithSpeaker(speaker Speaker) OrchestratorOption {
	return func(o *Orchestrator) { o.speaker.set(speaker) }
}

type EventPublisher interface {
	Publish(event events.Event)
}

func WithEventPublisher(publisher EventPublisher) OrchestratorOption {
	return func(o *Orchestrator) { o.publisher.set(publisher) }
}

// WithListenWindow overrides how long the microphone stays open after
// StartListening before recording is cut off.
func WithListenWindow(window time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if window <= 0 {
			return
		}
		o.listenWindow = window
	}
}

// WithCaptureRetries overrides the camera retry policy for vision queries.
func WithCaptureRetries(attempts int, delay time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if attempts <= 0 || delay < 0 {
			return
		}
		o.captureAttempts = attempts
		o.captureRetryDelay = delay
	}
}

type OrchestrateOptions struct {
	onStateChanged func(state State)
	onMessage      func(message ChatMessage)
	onReply        func(reply string)
}

type OrchestrateOption func(*OrchestrateOptions)

// WithStateChangedCallback registers a callback for assistant state
// transitions.
func WithStateChangedCallback(callback func(state State)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onStateChanged = callback
	}
}

// WithMessageCallback registers a callback for messages appended to the
// conversation log, both user and assistant.
func WithMessageCallback(callback func(message ChatMessage)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onMessage = callback
	}
}

// WithReplyCallback registers a callback for replies handed to speech
// output.
func WithReplyCallback(callback func(reply string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onReply = callback
	}
}
