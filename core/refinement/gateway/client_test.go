package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riteshh/seeforme-core/core/refinement"
)

func TestRefineReturnsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/refine" {
			t.Fatalf("expected /refine path, got %q", r.URL.Path)
		}
		w.Write([]byte(`{"result":"It's a red mug."}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	reply := client.Refine(context.Background(), "a red mug", "what am I holding", refinement.QueryTypeGeneral)
	if reply != "It's a red mug." {
		t.Fatalf("expected refined reply, got %q", reply)
	}
}

func TestRefineDegradesToSourceTextOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	reply := client.Refine(context.Background(), "a red mug on a table", "what is this", refinement.QueryTypeGeneral)
	if reply != "a red mug on a table" {
		t.Fatalf("expected source text echo, got %q", reply)
	}
}

func TestRefineFallsBackWithoutSourceText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	reply := client.Refine(context.Background(), "", "hello", refinement.QueryTypeGreeting)
	if reply != refinement.FallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestRefineFallsBackOnEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":""}`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected client, got error %v", err)
	}

	reply := client.Refine(context.Background(), "", "hello", refinement.QueryTypeGreeting)
	if reply != refinement.FallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}
