package events

const (
	// KindFrameCaptured identifies a usable camera frame acquisition.
	KindFrameCaptured Kind = "capture.frame_acquired"
	// KindCaptureFailed identifies exhaustion of capture attempts.
	KindCaptureFailed Kind = "capture.failed"
)

// FrameCaptured marks acquisition of a usable camera frame.
type FrameCaptured struct {
	Base
	ByteSize int
}

// NewFrameCaptured creates a frame captured event.
func NewFrameCaptured(byteSize int) FrameCaptured {
	return FrameCaptured{Base: NewBase(KindFrameCaptured), ByteSize: byteSize}
}

// CaptureFailed marks exhaustion of all capture attempts for a query.
type CaptureFailed struct {
	Base
	Attempts int
}

// NewCaptureFailed creates a capture failed event.
func NewCaptureFailed(attempts int) CaptureFailed {
	return CaptureFailed{Base: NewBase(KindCaptureFailed), Attempts: attempts}
}
