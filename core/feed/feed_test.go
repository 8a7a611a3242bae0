package feed

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/riteshh/seeforme-core/core/events"
)

func dialFeed(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("expected feed dial to succeed, got %v", err)
	}
	return conn
}

func TestPublishReachesSubscriber(t *testing.T) {
	broadcaster := NewBroadcaster()
	defer broadcaster.Close()

	server := httptest.NewServer(broadcaster.Handler())
	defer server.Close()

	conn := dialFeed(t, server)
	defer conn.Close()

	// The handler registers the subscription on its own goroutine.
	deadline := time.Now().Add(time.Second)
	for {
		broadcaster.mu.Lock()
		subscribed := len(broadcaster.subscribers) > 0
		broadcaster.mu.Unlock()
		if subscribed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	broadcaster.Publish(events.NewStateChanged("idle", "listening"))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg struct {
		Kind string `json:"kind"`
		Data struct {
			From string `json:"From"`
			To   string `json:"To"`
		} `json:"data"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("expected to read published event, got %v", err)
	}

	if msg.Kind != string(events.KindStateChanged) {
		t.Fatalf("expected kind %q, got %q", events.KindStateChanged, msg.Kind)
	}
	if msg.Data.From != "idle" || msg.Data.To != "listening" {
		t.Fatalf("expected transition idle->listening, got %q->%q", msg.Data.From, msg.Data.To)
	}
}

func TestPublishWithoutSubscribersDoesNotPanic(t *testing.T) {
	broadcaster := NewBroadcaster()
	defer broadcaster.Close()

	broadcaster.Publish(events.NewReplySpoken("hello"))
}
