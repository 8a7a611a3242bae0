package orchestration

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riteshh/seeforme-core/core/capture"
	"github.com/riteshh/seeforme-core/core/events"
	"github.com/riteshh/seeforme-core/core/intent"
	"github.com/riteshh/seeforme-core/core/refinement"
	"github.com/riteshh/seeforme-core/core/transcription"
	"github.com/riteshh/seeforme-core/core/vision"
)

// runTurn records the user's query and takes it through transcription,
// classification and the vision or conversational path. Every turn ends
// back in Idle, whatever happened along the way.
func (o *Orchestrator) runTurn(listenCtx context.Context) {
	ctx, span := tracer.Start(o.baseContext, "assistant turn")
	defer span.End()

	sample, err := o.recorder.record(listenCtx, o.listenWindow)

	o.mu.Lock()
	cancelListen := o.listenCancel
	o.listenCancel = nil
	o.mu.Unlock()
	if cancelListen != nil {
		cancelListen()
	}
	o.publisher.publish(events.NewListeningStopped())

	o.transition(StateProcessing)
	defer o.transition(StateIdle)
	defer turnCounter.Add(ctx, 1)

	if err != nil {
		logger.WarnContext(ctx, "recording failed", "error", err)
		o.say(ctx, recordingErrorMessage)
		return
	}

	utterance, err := o.transcription.transcribe(ctx, sample.WAV)
	if errors.Is(err, transcription.ErrNoSpeechDetected) {
		o.say(ctx, noSpeechMessage)
		return
	}
	if err != nil {
		logger.WarnContext(ctx, "transcription failed", "error", err)
		o.say(ctx, transcriptionMessage)
		return
	}

	o.appendMessage(RoleUser, utterance.Text)

	classified := intent.Classify(utterance.Text)
	span.SetAttributes(attribute.String("query.category", string(classified.Category)))

	if classified.Category == intent.NeedsVision {
		o.answerWithVision(ctx, utterance.Text, classified.Hint)
		return
	}
	o.answerConversationally(ctx, utterance.Text, classified.Category)
}

func (o *Orchestrator) answerWithVision(ctx context.Context, query, hint string) {
	frame, err := o.captureFrame(ctx)
	if err != nil {
		o.publisher.publish(events.NewCaptureFailed(o.captureAttempts))
		o.say(ctx, captureFailedMessage)
		return
	}
	o.publisher.publish(events.NewFrameCaptured(len(frame.Bytes)))

	description, err := o.vision.analyze(ctx, frame.Bytes, query, vision.WithHint(hint))
	if err != nil {
		logger.WarnContext(ctx, "vision analysis failed", "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
		o.say(ctx, errorApology(err))
		return
	}

	reply := o.refinement.refine(ctx, description, query, refinement.QueryTypeGeneral)
	o.say(ctx, reply)
}

func (o *Orchestrator) answerConversationally(ctx context.Context, query string, category intent.Category) {
	reply := o.refinement.refine(ctx, "", query, queryTypeFor(category))
	o.say(ctx, reply)
}

// captureFrame retries the camera a fixed number of times before giving
// up. A frame below the minimum size counts as a failed attempt.
func (o *Orchestrator) captureFrame(ctx context.Context) (capture.Frame, error) {
	var lastErr error
	for attempt := 0; attempt < o.captureAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(o.captureRetryDelay):
			case <-ctx.Done():
				return capture.Frame{}, ctx.Err()
			}
		}

		frame, err := o.camera.acquireFrame(ctx)
		if err == nil {
			return frame, nil
		}
		lastErr = err
	}
	return capture.Frame{}, lastErr
}

func queryTypeFor(category intent.Category) refinement.QueryType {
	switch category {
	case intent.AssistantInfo:
		return refinement.QueryTypeAssistantInfo
	case intent.UsageHelp:
		return refinement.QueryTypeUsageHelp
	case intent.Gratitude:
		return refinement.QueryTypeGratitude
	case intent.Greeting:
		return refinement.QueryTypeGreeting
	}
	return refinement.QueryTypeGeneral
}
