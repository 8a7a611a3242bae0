package orchestration

// State is the assistant's interaction state. The assistant is always in
// exactly one of the three states: Idle waiting for the user, Listening
// while the microphone window is open, Processing while a query is in
// flight. Every turn ends back in Idle.
type State string

const (
	StateIdle       State = "idle"
	StateListening  State = "listening"
	StateProcessing State = "processing"
)
