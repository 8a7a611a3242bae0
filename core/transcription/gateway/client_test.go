package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riteshh/seeforme-core/core/transcription"
)

func TestTranscribeReturnsUtterance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			t.Fatalf("expected /transcribe path, got %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			t.Fatalf("expected audio payload")
		}
		w.Write([]byte(`{"transcript":"what am I holding"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	utterance, err := client.Transcribe(context.Background(), []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("expected transcription to succeed, got %v", err)
	}
	if utterance.Text != "what am I holding" {
		t.Fatalf("expected transcript, got %q", utterance.Text)
	}
}

func TestTranscribeEmptyTranscriptMeansNoSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transcript":""}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	_, err = client.Transcribe(context.Background(), []byte{1, 2, 3})
	if !errors.Is(err, transcription.ErrNoSpeechDetected) {
		t.Fatalf("expected ErrNoSpeechDetected, got %v", err)
	}
}

func TestTranscribeNonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	_, err = client.Transcribe(context.Background(), []byte{1, 2, 3})
	if err == nil {
		t.Fatalf("expected error on bad gateway status")
	}
	if errors.Is(err, transcription.ErrNoSpeechDetected) {
		t.Fatalf("expected service error, not no-speech")
	}
}
