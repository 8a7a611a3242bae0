// Package feed streams assistant events to websocket subscribers, so UIs
// can mirror the conversation and state transitions live.
package feed

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/riteshh/seeforme-core/core/events"
)

type envelope struct {
	Kind      events.Kind  `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
	Data      events.Event `json:"data"`
}

type Broadcaster struct {
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*websocket.Conn]struct{}
	closed      bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader:    websocket.Upgrader{},
		subscribers: map[*websocket.Conn]struct{}{},
	}
}

// Handler upgrades incoming requests and keeps the connection subscribed
// until the client disconnects. Inbound messages are discarded.
func (b *Broadcaster) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade feed connection: %v", err)
			return
		}

		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			_ = conn.Close()
			return
		}
		b.subscribers[conn] = struct{}{}
		b.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		b.mu.Lock()
		delete(b.subscribers, conn)
		b.mu.Unlock()
		_ = conn.Close()
	})
}

// Publish fans the event out to every subscriber. Subscribers that fail to
// accept the write are dropped.
func (b *Broadcaster) Publish(event events.Event) {
	msg := envelope{
		Kind:      event.Kind(),
		Timestamp: event.Timestamp(),
		Data:      event,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.subscribers {
		if err := conn.WriteJSON(msg); err != nil {
			delete(b.subscribers, conn)
			_ = conn.Close()
		}
	}
}

func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for conn := range b.subscribers {
		_ = conn.Close()
		delete(b.subscribers, conn)
	}
}
