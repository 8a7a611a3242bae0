package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riteshh/seeforme-core/core/vision"
)

func TestAnalyzeAnnotatesQueryWithHint(t *testing.T) {
	var received struct {
		Image string `json:"image"`
		Query string `json:"query"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("expected json payload, got %v", err)
		}
		w.Write([]byte(`{"result":"a red mug on a desk"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	result, err := client.Analyze(context.Background(), []byte{1, 2, 3}, "what am I holding",
		vision.WithHint("focus on held objects"))
	if err != nil {
		t.Fatalf("expected analysis to succeed, got %v", err)
	}

	if result != "a red mug on a desk" {
		t.Fatalf("expected description, got %q", result)
	}
	if received.Query != "what am I holding (focus on held objects)" {
		t.Fatalf("expected hint-annotated query, got %q", received.Query)
	}
	if received.Image == "" {
		t.Fatalf("expected base64 frame in payload")
	}
}

func TestAnalyzeEmptyResultIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"  "}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	_, err = client.Analyze(context.Background(), []byte{1}, "what do you see")
	if !errors.Is(err, vision.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestAnalyzeNonSuccessStatusMentionsImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	_, err = client.Analyze(context.Background(), []byte{1}, "what do you see")
	if err == nil || !strings.Contains(err.Error(), "image") {
		t.Fatalf("expected image processing error, got %v", err)
	}
}

func TestAnalyzeTimeoutMentionsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"result":"too late"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL), WithTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	_, err = client.Analyze(context.Background(), []byte{1}, "what do you see")
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}
