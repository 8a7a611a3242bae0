package events

const (
	// KindStateChanged identifies assistant state transitions.
	KindStateChanged Kind = "state.changed"
	// KindListeningStarted identifies the microphone window opening.
	KindListeningStarted Kind = "listening.started"
	// KindListeningStopped identifies the microphone window closing.
	KindListeningStopped Kind = "listening.stopped"
)

// StateChanged marks a transition between assistant states.
type StateChanged struct {
	Base
	From string
	To   string
}

// NewStateChanged creates a state changed event.
func NewStateChanged(from, to string) StateChanged {
	return StateChanged{Base: NewBase(KindStateChanged), From: from, To: to}
}

// ListeningStarted marks the opening of a microphone window.
type ListeningStarted struct{ Base }

// NewListeningStarted creates a listening started event.
func NewListeningStarted() ListeningStarted {
	return ListeningStarted{Base: NewBase(KindListeningStarted)}
}

// ListeningStopped marks the closing of a microphone window.
type ListeningStopped struct{ Base }

// NewListeningStopped creates a listening stopped event.
func NewListeningStopped() ListeningStopped {
	return ListeningStopped{Base: NewBase(KindListeningStopped)}
}
