package casefeed

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"firportal/backend/internal/models"
)

// Hub tracks the connected feed subscribers and dispatches FIR events
// to them. All state is owned by the Run goroutine; registration and
// broadcast happen over channels.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	// EventsCh receives events to broadcast, normally fed by the Redis
	// Pub/Sub listener. Tests push into it directly.
	EventsCh chan models.FIREvent

	Redis *redis.Client

	// done is closed when Run exits so blocked senders can give up.
	done chan struct{}
}

// NewHub creates a hub. Pass a nil Redis client to run without the
// Pub/Sub listener (events can still be injected via EventsCh).
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventsCh:     make(chan models.FIREvent),
		Redis:        rdb,
		done:         make(chan struct{}),
	}
}

// Done is closed once the hub loop has exited. Anything that sends to
// the hub selects on it so shutdown cannot strand a goroutine.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Unregister hands the client to the hub loop, giving up if the hub has
// already shut down.
func (h *Hub) Unregister(c Client) {
	select {
	case h.UnregisterCh <- c:
	case <-h.done:
	}
}

// StartPubSubListener subscribes to the event channel and forwards
// decoded events into the hub loop.
func (h *Hub) StartPubSubListener(ctx context.Context) {
	go func() {
		pubsub := h.Redis.Subscribe(ctx, EventChannel)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event models.FIREvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("casefeed: dropping malformed event: %v", err)
					continue
				}
				select {
				case h.EventsCh <- event:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run is the hub's main loop. It owns the client map; no other
// goroutine touches it.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.Redis != nil {
		h.StartPubSubListener(ctx)
	}

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetID()] = client
			log.Printf("casefeed: subscriber %s connected (user %s)", client.GetID(), client.GetUserID())

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetID()]; ok {
				delete(h.Clients, client.GetID())
				client.Close()
				log.Printf("casefeed: subscriber %s disconnected", client.GetID())
			}

		case event := <-h.EventsCh:
			for id, client := range h.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// A subscriber that cannot keep up is dropped
					// rather than allowed to stall the loop.
					delete(h.Clients, id)
					client.Close()
				}
			}

		case <-ctx.Done():
			// Close every subscriber so their write pumps terminate.
			for id, client := range h.Clients {
				delete(h.Clients, id)
				client.Close()
			}
			return
		}
	}
}
