package microphone

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riteshh/seeforme-core/core/audio"
	"github.com/riteshh/seeforme-core/core/capture"
)

type fakeInput struct {
	chunk   []byte
	repeats int
	failed  bool
}

func (f *fakeInput) StartCapture(ctx context.Context, onAudio func(audio []byte)) error {
	if f.failed {
		return errors.New("no device")
	}
	go func() {
		for i := 0; i < f.repeats; i++ {
			select {
			case <-ctx.Done():
				return
			default:
				onAudio(f.chunk)
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
	return nil
}

func (f *fakeInput) StopCapture() error { return nil }

func (f *fakeInput) EncodingInfo() audio.EncodingInfo {
	return audio.EncodingInfo{SampleRate: 16000, Format: audio.EncodingLinear16}
}

func TestRecordWrapsSampleAsWAV(t *testing.T) {
	// ~10 chunks of 100ms each at 16kHz linear16
	input := &fakeInput{chunk: make([]byte, 3200), repeats: 10}
	r := NewRecorder(input)

	sample, err := r.Record(context.Background(), 100*time.Millisecond)
	if err != nil {
		t.Fatalf("expected recording to succeed, got %v", err)
	}
	if len(sample.WAV) <= 44 {
		t.Fatalf("expected WAV payload beyond header, got %d bytes", len(sample.WAV))
	}
	if string(sample.WAV[0:4]) != "RIFF" {
		t.Fatalf("expected RIFF container, got %q", sample.WAV[0:4])
	}
}

func TestRecordRejectsTooShortSample(t *testing.T) {
	input := &fakeInput{chunk: make([]byte, 32), repeats: 1}
	r := NewRecorder(input)

	_, err := r.Record(context.Background(), 20*time.Millisecond)
	if !errors.Is(err, capture.ErrCaptureFailed) {
		t.Fatalf("expected ErrCaptureFailed for short sample, got %v", err)
	}
}

func TestRecordFailsWhenDeviceUnavailable(t *testing.T) {
	r := NewRecorder(&fakeInput{failed: true})

	_, err := r.Record(context.Background(), 20*time.Millisecond)
	if !errors.Is(err, capture.ErrCaptureFailed) {
		t.Fatalf("expected ErrCaptureFailed for missing device, got %v", err)
	}
}
