package events

import "testing"

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "session started", event: NewSessionStarted(true), expected: KindSessionStarted},
		{name: "state changed", event: NewStateChanged("idle", "listening"), expected: KindStateChanged},
		{name: "listening started", event: NewListeningStarted(), expected: KindListeningStarted},
		{name: "listening stopped", event: NewListeningStopped(), expected: KindListeningStopped},
		{name: "message appended", event: NewMessageAppended("id", "user", "hello"), expected: KindMessageAppended},
		{name: "frame captured", event: NewFrameCaptured(2048), expected: KindFrameCaptured},
		{name: "capture failed", event: NewCaptureFailed(3), expected: KindCaptureFailed},
		{name: "reply spoken", event: NewReplySpoken("hi there"), expected: KindReplySpoken},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestListeningStartedAndStoppedKindsAreDistinct(t *testing.T) {
	started := NewListeningStarted()
	stopped := NewListeningStopped()

	if started.Kind() == stopped.Kind() {
		t.Fatalf("expected listening started and stopped kinds to differ, both were %q", started.Kind())
	}
}
