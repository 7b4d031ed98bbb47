// Package casefeed fans FIR events out to connected review consoles.
// Mutations publish to a Redis channel; the hub subscribes and pushes
// events to every WebSocket subscriber, so the feed keeps working when
// the API runs as more than one process.
package casefeed

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"firportal/backend/internal/models"
)

// EventChannel is the Redis Pub/Sub channel carrying FIR events.
const EventChannel = "fir:events"

// Publisher implements fir.EventPublisher over Redis Pub/Sub.
type Publisher struct {
	Redis *redis.Client
}

// NewPublisher creates a publisher over the given Redis client.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{Redis: rdb}
}

func (p *Publisher) PublishFIREvent(ctx context.Context, event models.FIREvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Redis.Publish(ctx, EventChannel, payload).Err()
}
