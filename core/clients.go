package orchestration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riteshh/seeforme-core/core/capture"
	"github.com/riteshh/seeforme-core/core/events"
	"github.com/riteshh/seeforme-core/core/refinement"
	"github.com/riteshh/seeforme-core/core/transcription"
	"github.com/riteshh/seeforme-core/core/vision"
)

// Facades normalize optional client wiring: every orchestrator path can
// call through them without nil checks.

type transcriptionFacade struct {
	client TranscriptionClient
}

func (f *transcriptionFacade) set(client TranscriptionClient) {
	if f != nil {
		f.client = client
	}
}

func (f *transcriptionFacade) transcribe(ctx context.Context, audio []byte) (transcription.Utterance, error) {
	if f.client == nil {
		return transcription.Utterance{}, fmt.Errorf("no transcription client configured")
	}
	return f.client.Transcribe(ctx, audio)
}

type visionFacade struct {
	client VisionClient
}

func (f *visionFacade) set(client VisionClient) {
	if f != nil {
		f.client = client
	}
}

func (f *visionFacade) analyze(ctx context.Context, frame []byte, query string, opts ...vision.AnalysisOption) (string, error) {
	if f.client == nil {
		return "", fmt.Errorf("no vision client configured")
	}
	return f.client.Analyze(ctx, frame, query, opts...)
}

type refinementFacade struct {
	client RefinementClient
}

func (f *refinementFacade) set(client RefinementClient) {
	if f != nil {
		f.client = client
	}
}

func (f *refinementFacade) refine(ctx context.Context, sourceText, originalQuery string, queryType refinement.QueryType) string {
	if f.client == nil {
		if strings.TrimSpace(sourceText) != "" {
			return sourceText
		}
		return refinement.FallbackReply
	}
	return f.client.Refine(ctx, sourceText, originalQuery, queryType)
}

type cameraFacade struct {
	client Camera
}

func (f *cameraFacade) set(client Camera) {
	if f != nil {
		f.client = client
	}
}

func (f *cameraFacade) isConfigured() bool { return f.client != nil }

func (f *cameraFacade) acquireFrame(ctx context.Context) (capture.Frame, error) {
	if f.client == nil {
		return capture.Frame{}, fmt.Errorf("%w: no camera configured", capture.ErrCaptureFailed)
	}
	return f.client.AcquireFrame(ctx)
}

type recorderFacade struct {
	client Recorder
}

func (f *recorderFacade) set(client Recorder) {
	if f != nil {
		f.client = client
	}
}

func (f *recorderFacade) record(ctx context.Context, maxDuration time.Duration) (capture.AudioSample, error) {
	if f.client == nil {
		return capture.AudioSample{}, fmt.Errorf("%w: no recorder configured", capture.ErrCaptureFailed)
	}
	return f.client.Record(ctx, maxDuration)
}

type speakerFacade struct {
	client Speaker
}

func (f *speakerFacade) set(client Speaker) {
	if f != nil {
		f.client = client
	}
}

func (f *speakerFacade) speak(ctx context.Context, text string) {
	if f.client == nil {
		return
	}
	if err := f.client.Speak(ctx, text); err != nil {
		logger.WarnContext(ctx, "failed to speak reply", "error", err)
	}
}

func (f *speakerFacade) stop() {
	if f.client == nil {
		return
	}
	if err := f.client.Stop(); err != nil {
		logger.Warn("failed to stop speech output", "error", err)
	}
}

type publisherFacade struct {
	client EventPublisher
}

func (f *publisherFacade) set(client EventPublisher) {
	if f != nil {
		f.client = client
	}
}

func (f *publisherFacade) publish(event events.Event) {
	if f.client == nil {
		return
	}
	f.client.Publish(event)
}
