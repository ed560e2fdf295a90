package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RidesFeed is the board-wide feed every ride mutation publishes to.
const RidesFeed = "rides"

type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Feed string
	Send chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(feed string) *Client {
	client := &Client{
		Feed: feed,
		Send: make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[feed] == nil {
		h.clients[feed] = map[*Client]struct{}{}
	}
	h.clients[feed][client] = struct{}{}
	return client
}

// Unregister releases the client's feed subscription and closes its channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if feedClients, ok := h.clients[client.Feed]; ok {
		delete(feedClients, client)
		if len(feedClients) == 0 {
			delete(h.clients, client.Feed)
		}
	}
	close(client.Send)
}

// Broadcast delivers a board snapshot to every subscriber on the feed. With
// redis configured, delivery routes through the shared channel so subscribers
// on every instance receive exactly one copy; without redis it fans out
// locally.
func (h *Hub) Broadcast(feed string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(feed), payload).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}
	h.deliver(feed, payload)
}

func (h *Hub) deliver(feed string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[feed]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "board:*:updates")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliver(feedFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func redisChannel(feed string) string {
	return "board:" + feed + ":updates"
}

func feedFromChannel(ch string) string {
	// board:{feed}:updates
	const prefix = "board:"
	const suffix = ":updates"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
