package speech

import (
	"context"
	"fmt"
	"testing"
)

type fakeSynthesizer struct {
	err   error
	calls []string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text string, opts ...SpeechOption) ([]byte, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(text), nil
}

type fakePlayback struct {
	sent    [][]byte
	cleared int
}

func (f *fakePlayback) SendAudio(audio []byte) error {
	f.sent = append(f.sent, audio)
	return nil
}

func (f *fakePlayback) ClearBuffer() {
	f.cleared++
}

func TestSpeakSendsSynthesizedAudio(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	playback := &fakePlayback{}
	speaker := NewSpeaker(synthesizer, playback)

	if err := speaker.Speak(context.Background(), "hello"); err != nil {
		t.Fatalf("expected speak to succeed, got %v", err)
	}

	if len(playback.sent) != 1 || string(playback.sent[0]) != "hello" {
		t.Fatalf("expected synthesized audio to be sent, got %v", playback.sent)
	}
}

func TestSpeakClearsQueuedAudioFirst(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	playback := &fakePlayback{}
	speaker := NewSpeaker(synthesizer, playback)

	_ = speaker.Speak(context.Background(), "first")
	_ = speaker.Speak(context.Background(), "second")

	if playback.cleared != 2 {
		t.Fatalf("expected buffer cleared before each speak, got %d clears", playback.cleared)
	}
}

func TestSpeakPropagatesSynthesisFailure(t *testing.T) {
	synthesizer := &fakeSynthesizer{err: fmt.Errorf("synthesis down")}
	playback := &fakePlayback{}
	speaker := NewSpeaker(synthesizer, playback)

	if err := speaker.Speak(context.Background(), "hello"); err == nil {
		t.Fatalf("expected speak to fail")
	}
	if len(playback.sent) != 0 {
		t.Fatalf("expected no audio sent on failure, got %v", playback.sent)
	}
}

func TestStopClearsBufferWithoutSpeaking(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	playback := &fakePlayback{}
	speaker := NewSpeaker(synthesizer, playback)

	if err := speaker.Stop(); err != nil {
		t.Fatalf("expected stop to succeed, got %v", err)
	}
	if playback.cleared != 1 {
		t.Fatalf("expected one clear, got %d", playback.cleared)
	}
	if len(synthesizer.calls) != 0 {
		t.Fatalf("expected no synthesis, got %v", synthesizer.calls)
	}
}
