package handlers

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crest/internal/infrastructure/pubsub"
	"crest/internal/shared/goroutine"
	"crest/internal/shared/logger"
)

const (
	// sseKeepaliveInterval is the interval for sending keepalive comments.
	sseKeepaliveInterval = 30 * time.Second

	// sseClientBuffer bounds each client's event queue. A client that
	// cannot drain its queue has events dropped rather than blocking the
	// feed for everyone else.
	sseClientBuffer = 16
)

// EventsHandler streams change feed events to back-office clients over
// Server-Sent Events. One subscriber goroutine consumes the Redis feed
// and fans out to every connected client.
type EventsHandler struct {
	feed   *pubsub.RedisChangeFeed
	logger logger.Interface

	mu      sync.RWMutex
	clients map[string]chan pubsub.ChangeEvent
}

func NewEventsHandler(feed *pubsub.RedisChangeFeed, log logger.Interface) *EventsHandler {
	return &EventsHandler{
		feed:    feed,
		logger:  log,
		clients: make(map[string]chan pubsub.ChangeEvent),
	}
}

// Start begins consuming the change feed and fanning events out to
// connected clients. It returns immediately; the subscriber runs until
// ctx is cancelled.
func (h *EventsHandler) Start(ctx context.Context) {
	goroutine.SafeGo(h.logger, "sse-change-feed", func() {
		if err := h.feed.Subscribe(ctx, h.broadcast); err != nil && ctx.Err() == nil {
			h.logger.Errorw("change feed subscriber exited", "error", err)
		}
	})
}

func (h *EventsHandler) broadcast(event pubsub.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, ch := range h.clients {
		select {
		case ch <- event:
		default:
			h.logger.Warnw("dropping change event for slow SSE client",
				"conn_id", connID,
				"kind", event.Kind,
			)
		}
	}
}

func (h *EventsHandler) register(connID string) chan pubsub.ChangeEvent {
	ch := make(chan pubsub.ChangeEvent, sseClientBuffer)

	h.mu.Lock()
	h.clients[connID] = ch
	h.mu.Unlock()

	return ch
}

func (h *EventsHandler) unregister(connID string) {
	h.mu.Lock()
	delete(h.clients, connID)
	h.mu.Unlock()
}

// Stream handles GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	connID := uuid.New().String()
	ch := h.register(connID)
	defer h.unregister(connID)

	h.logger.Infow("SSE client connected", "conn_id", connID)
	defer h.logger.Infow("SSE client disconnected", "conn_id", connID)

	keepalive := time.NewTicker(sseKeepaliveInterval)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false

		case event := <-ch:
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Errorw("failed to marshal SSE event", "error", err)
				return true
			}
			c.SSEvent(string(event.Kind), string(data))
			return true

		case <-keepalive.C:
			c.SSEvent("keepalive", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
