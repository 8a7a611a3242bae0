// Package orchestration runs the assistant's query loop: listen for a
// spoken query, transcribe it, decide whether it needs the camera, and
// speak a short reply back.
package orchestration

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/riteshh/seeforme-core/core/events"
)

const (
	defaultListenWindow      = 5000 * time.Millisecond
	defaultCaptureAttempts   = 3
	defaultCaptureRetryDelay = 300 * time.Millisecond
)

type Orchestrator struct {
	conversation conversationLog

	// transcription, vision and the other facades normalize optional
	// client wiring.
	transcription transcriptionFacade
	vision        visionFacade
	refinement    refinementFacade
	camera        cameraFacade
	recorder      recorderFacade
	speaker       speakerFacade
	publisher     publisherFacade

	listenWindow      time.Duration
	captureAttempts   int
	captureRetryDelay time.Duration

	orchestrateOptions OrchestrateOptions
	baseContext        context.Context

	closeOnce sync.Once

	mu           sync.Mutex
	state        State
	cameraReady  bool
	listenCancel context.CancelFunc
	closed       bool
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		state:             StateIdle,
		baseContext:       context.Background(),
		listenWindow:      defaultListenWindow,
		captureAttempts:   defaultCaptureAttempts,
		captureRetryDelay: defaultCaptureRetryDelay,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Orchestrate starts the session: it greets the user, warms up the camera
// and leaves the assistant Idle, waiting for StartListening.
//
// ctx is used as a base context for every turn, cancelling it closes the
// orchestrator.
//
// Contract: call Orchestrate at most once per orchestrator instance.
func (o *Orchestrator) Orchestrate(ctx context.Context, opts ...OrchestrateOption) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		log.Println("Warning: orchestrator already closed, skipping Orchestrate")
		return
	}
	o.mu.Unlock()

	o.orchestrateOptions = OrchestrateOptions{}
	for _, opt := range opts {
		opt(&o.orchestrateOptions)
	}
	o.baseContext = ctx

	go func() {
		<-ctx.Done()
		o.Close()
	}()

	o.appendMessage(RoleAssistant, greetingMessage)

	if o.camera.isConfigured() {
		ready := o.ensureCamera(ctx)
		o.publisher.publish(events.NewSessionStarted(ready))
		if ready {
			o.say(ctx, cameraReadyMessage)
		} else {
			o.say(ctx, cameraFailedMessage)
		}
	} else {
		o.publisher.publish(events.NewSessionStarted(false))
	}
}

// StartListening opens the microphone window and kicks off a turn. It is a
// no-op unless the assistant is Idle: pressing listen while a query is in
// flight neither queues nor restarts anything.
func (o *Orchestrator) StartListening() {
	o.mu.Lock()
	if o.closed || o.state != StateIdle {
		o.mu.Unlock()
		return
	}
	cameraPending := !o.cameraReady && o.camera.isConfigured()
	o.mu.Unlock()

	// A pending camera turns this press into a re-acquisition attempt; the
	// user presses again to actually listen.
	if cameraPending {
		if o.ensureCamera(o.baseContext) {
			o.say(o.baseContext, cameraReadyMessage)
		} else {
			o.say(o.baseContext, cameraFailedMessage)
		}
		return
	}

	o.mu.Lock()
	if o.closed || o.state != StateIdle {
		o.mu.Unlock()
		return
	}
	from := o.state
	o.state = StateListening
	listenCtx, cancel := context.WithCancel(o.baseContext)
	o.listenCancel = cancel
	o.mu.Unlock()

	// Cut off any reply still playing before the microphone opens.
	o.speaker.stop()

	o.notifyStateChanged(from, StateListening)
	o.publisher.publish(events.NewListeningStarted())

	go o.runTurn(listenCtx)
}

// StopListening closes the microphone window early. Whatever was recorded
// so far still goes through the pipeline.
func (o *Orchestrator) StopListening() {
	o.mu.Lock()
	cancel := o.listenCancel
	listening := o.state == StateListening
	o.mu.Unlock()

	if listening && cancel != nil {
		cancel()
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Conversation returns a point-in-time snapshot of the conversation log.
func (o *Orchestrator) Conversation() []ChatMessage {
	return o.conversation.History()
}

func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.mu.Lock()
		o.closed = true
		cancel := o.listenCancel
		o.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		o.speaker.stop()
	})
}

func (o *Orchestrator) ensureCamera(ctx context.Context) bool {
	frame, err := o.camera.acquireFrame(ctx)
	if err != nil {
		logger.WarnContext(ctx, "camera warmup failed", "error", err)
		o.mu.Lock()
		o.cameraReady = false
		o.mu.Unlock()
		return false
	}

	o.publisher.publish(events.NewFrameCaptured(len(frame.Bytes)))
	o.mu.Lock()
	o.cameraReady = true
	o.mu.Unlock()
	return true
}

func (o *Orchestrator) transition(to State) {
	o.mu.Lock()
	from := o.state
	o.state = to
	o.mu.Unlock()

	o.notifyStateChanged(from, to)
}

func (o *Orchestrator) notifyStateChanged(from, to State) {
	if from == to {
		return
	}
	if o.orchestrateOptions.onStateChanged != nil {
		o.orchestrateOptions.onStateChanged(to)
	}
	o.publisher.publish(events.NewStateChanged(string(from), string(to)))
}

func (o *Orchestrator) appendMessage(role Role, text string) ChatMessage {
	message := o.conversation.append(role, text)
	if o.orchestrateOptions.onMessage != nil {
		o.orchestrateOptions.onMessage(message)
	}
	o.publisher.publish(events.NewMessageAppended(message.ID, string(message.Role), message.Text))
	return message
}

// say appends an assistant message and hands it to speech output.
func (o *Orchestrator) say(ctx context.Context, text string) {
	o.appendMessage(RoleAssistant, text)
	if o.orchestrateOptions.onReply != nil {
		o.orchestrateOptions.onReply(text)
	}
	o.publisher.publish(events.NewReplySpoken(text))
	o.speaker.speak(ctx, text)
}
