// Package listener provides a Postgres LISTEN/NOTIFY consumer for
// entity-change events. It holds a dedicated pgx connection (not gorm's
// pool) listening on the `entity_changed` channel and fans the events out
// to connected SSE clients, which refetch the affected collection.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const (
	channel          = "entity_changed"
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// ChangeEvent is the JSON payload from pg_notify('entity_changed', ...).
// Tables install row triggers emitting one of these per insert/update/delete.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// Hub fans entity-change events out to subscribed SSE clients.
type Hub struct {
	mu      sync.Mutex
	clients map[chan ChangeEvent]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan ChangeEvent]struct{})}
}

// Subscribe registers a client channel. The returned cancel func must be
// called when the client disconnects.
func (h *Hub) Subscribe() (<-chan ChangeEvent, func()) {
	ch := make(chan ChangeEvent, 16)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch, func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
		close(ch)
	}
}

// Broadcast delivers an event to every subscriber. Slow clients whose
// buffer is full are skipped rather than blocking the listener.
func (h *Hub) Broadcast(event ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- event:
		default:
		}
	}
}

// Start opens a dedicated connection and listens on the entity_changed
// channel, broadcasting every event through the hub. It reconnects
// automatically on connection loss. Blocks until ctx is cancelled.
// Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, hub *Hub) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, hub)
		if ctx.Err() != nil {
			log.Println("Change listener stopped (context cancelled)")
			return
		}

		log.Printf("Change listener disconnected, reconnecting in %s: %v", backoff, err)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection
// drops or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, hub *Hub) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	log.Printf("Change listener connected on channel %q", channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		var event ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			log.Printf("Failed to parse change event %q: %v", notification.Payload, err)
			continue
		}

		hub.Broadcast(event)
	}
}

// StreamHandler returns a gin handler serving the hub's events as
// Server-Sent Events. Each event carries the changed table, action and
// row id; clients refetch the affected collection on receipt.
func StreamHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, cancel := hub.Subscribe()
		defer cancel()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		// Heartbeat keeps proxies from closing idle streams.
		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		c.Stream(func(w io.Writer) bool {
			select {
			case event, ok := <-events:
				if !ok {
					return false
				}
				c.SSEvent("change", event)
				return true
			case <-heartbeat.C:
				c.SSEvent("ping", time.Now().Unix())
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
