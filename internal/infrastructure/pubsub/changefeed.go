// Package pubsub implements the change feed over Redis Pub/Sub. Writers
// publish per-row change events; each service instance subscribes and
// invokes registered refresh handlers. Delivery is at-least-once with no
// cross-row ordering; consumers re-read the row rather than trusting the
// event payload.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crest/internal/shared/goroutine"
	"crest/internal/shared/logger"
)

const (
	ticketChannel       = "crest:changed:ticket"
	conversationChannel = "crest:changed:conversation"
	reportChannel       = "crest:changed:report"
)

// ChangeKind names the row family a change event refers to.
type ChangeKind string

const (
	KindTicket       ChangeKind = "ticket"
	KindConversation ChangeKind = "conversation"
	KindReport       ChangeKind = "report"
)

// ChangeEvent is the wire payload of one change notification.
type ChangeEvent struct {
	Kind      ChangeKind `json:"kind"`
	ID        uint       `json:"id"`
	Timestamp int64      `json:"timestamp"`
}

// RedisChangeFeed publishes and consumes change events.
type RedisChangeFeed struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisChangeFeed(client *redis.Client, log logger.Interface) *RedisChangeFeed {
	return &RedisChangeFeed{
		client: client,
		logger: log,
	}
}

func (f *RedisChangeFeed) PublishTicketChanged(ctx context.Context, ticketID uint) error {
	return f.publish(ctx, ticketChannel, ChangeEvent{Kind: KindTicket, ID: ticketID})
}

func (f *RedisChangeFeed) PublishConversationChanged(ctx context.Context, ticketID uint) error {
	return f.publish(ctx, conversationChannel, ChangeEvent{Kind: KindConversation, ID: ticketID})
}

func (f *RedisChangeFeed) PublishReportChanged(ctx context.Context, reportID uint) error {
	return f.publish(ctx, reportChannel, ChangeEvent{Kind: KindReport, ID: reportID})
}

func (f *RedisChangeFeed) publish(ctx context.Context, channel string, event ChangeEvent) error {
	event.Timestamp = time.Now().UTC().UnixMilli()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := f.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	f.logger.Debugw("change event published", "kind", event.Kind, "id", event.ID)
	return nil
}

// Subscribe consumes all change channels and dispatches each event to the
// handler on its own goroutine. It blocks until ctx is cancelled,
// reconnecting with exponential backoff on transport errors.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, handler func(ChangeEvent)) error {
	const maxBackoff = 30 * time.Second
	backoff := time.Second

	for {
		err := f.consume(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		f.logger.Warnw("change feed disconnected, reconnecting",
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (f *RedisChangeFeed) consume(ctx context.Context, handler func(ChangeEvent)) error {
	sub := f.client.Subscribe(ctx, ticketChannel, conversationChannel, reportChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to change channels: %w", err)
	}

	f.logger.Infow("subscribed to change feed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			f.logger.Infow("change feed subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("change feed channel closed")
			}

			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Warnw("failed to unmarshal change event", "payload", msg.Payload, "error", err)
				continue
			}

			goroutine.SafeGo(f.logger, "change-feed-handler", func() {
				handler(event)
			})
		}
	}
}
