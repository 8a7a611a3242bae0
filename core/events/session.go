package events

const (
	// KindSessionStarted identifies assistant session startup.
	KindSessionStarted Kind = "session.started"
)

// SessionStarted marks assistant session startup and camera readiness.
type SessionStarted struct {
	Base
	CameraReady bool
}

// NewSessionStarted creates a session started event.
func NewSessionStarted(cameraReady bool) SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted), CameraReady: cameraReady}
}
