package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/protocol"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type ClientInterface interface {
	ID() string
	SendJSON(v interface{})
	SendBytes(b []byte)
	Close()
}

// Navigator is the part of the shell a client may drive.
type Navigator interface {
	SetView(id string) models.ViewID
}

type Hub struct {
	subscribers map[string]map[ClientInterface]bool
	clientSubs  map[ClientInterface]map[string]bool

	store    repository.FeedStore
	nav      Navigator
	logger   *zap.Logger
	mu       sync.RWMutex
	refCount map[string]int

	onClients func(n int)
}

// NewHub wires the hub to its feed; the pub/sub loop lives until ctx ends.
func NewHub(ctx context.Context, store repository.FeedStore, nav Navigator, logger *zap.Logger) *Hub {
	h := &Hub{
		subscribers: make(map[string]map[ClientInterface]bool),
		clientSubs:  make(map[ClientInterface]map[string]bool),
		store:       store,
		nav:         nav,
		logger:      logger,
		refCount:    make(map[string]int),
	}

	go h.store.RunPubSub(ctx, h.Broadcast)

	return h
}

// OnClientCount is called with the number of registered clients after every change.
func (h *Hub) OnClientCount(fn func(n int)) { h.onClients = fn }

func (h *Hub) HandleCommand(client ClientInterface, req protocol.WSRequest) {
	switch req.Action {
	case protocol.ActionSubscribe:
		h.handleSubscribe(client, req)
	case protocol.ActionUnsubscribe:
		h.handleUnsubscribe(client, req)
	case protocol.ActionUnsubscribeAll:
		h.handleUnsubscribeAll(client, req)
	case protocol.ActionNavigate:
		h.handleNavigate(client, req)
	default:
		h.sendError(client, req.ID, "Unknown action: "+req.Action)
	}
}

func (h *Hub) handleSubscribe(client ClientInterface, req protocol.WSRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var valid []string
	for _, topic := range req.Payload.Topics {
		if !protocol.ValidTopics[topic] {
			continue
		}
		// Idempotency: Ignore if already subscribed
		if h.clientSubs[client] != nil && h.clientSubs[client][topic] {
			continue
		}
		valid = append(valid, topic)
	}

	if len(valid) == 0 {
		h.sendError(client, req.ID, "No valid/new topics provided")
		return
	}

	if h.clientSubs[client] == nil {
		h.clientSubs[client] = make(map[string]bool)
		h.notifyClients()
	}

	for _, topic := range valid {
		h.clientSubs[client][topic] = true
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[ClientInterface]bool)
		}
		h.subscribers[topic][client] = true

		// Upstream subscription is ref-counted per topic
		h.refCount[topic]++
		if h.refCount[topic] == 1 {
			if err := h.store.SubscribeToFeed(context.Background(), topic); err != nil {
				h.logger.Error("Failed to subscribe upstream", zap.String("topic", topic), zap.Error(err))
			}
		}
	}

	h.sendAck(client, req.ID, "success", fmt.Sprintf("Subscribed to %v", valid))

	// Snapshots are fetched off the lock
	go func(targets []string) {
		snapshots, err := h.store.GetSnapshots(context.Background(), targets)
		if err != nil {
			h.logger.Warn("Snapshot fetch failed", zap.Error(err))
			return
		}
		for _, topic := range targets {
			if payload, ok := snapshots[topic]; ok {
				client.SendBytes(protocol.Envelope(topic, payload))
			}
		}
	}(valid)
}

func (h *Hub) handleUnsubscribe(client ClientInterface, req protocol.WSRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var removed []string
	if subs, ok := h.clientSubs[client]; ok {
		for _, topic := range req.Payload.Topics {
			if subs[topic] {
				delete(subs, topic)
				delete(h.subscribers[topic], client)
				removed = append(removed, topic)
				h.decreaseRefCount(topic)
			}
		}
	}

	if len(removed) > 0 {
		h.sendAck(client, req.ID, "success", fmt.Sprintf("Unsubscribed from %v", removed))
	} else {
		h.sendError(client, req.ID, fmt.Sprintf("Not subscribed to: %v", req.Payload.Topics))
	}
}

func (h *Hub) handleUnsubscribeAll(client ClientInterface, req protocol.WSRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.clientSubs[client]; ok {
		for topic := range subs {
			delete(h.subscribers[topic], client)
			h.decreaseRefCount(topic)
		}
		// keep the client registered
		h.clientSubs[client] = make(map[string]bool)
	}
	h.sendAck(client, req.ID, "success", "Unsubscribed from all topics")
}

func (h *Hub) handleNavigate(client ClientInterface, req protocol.WSRequest) {
	active := h.nav.SetView(req.Payload.View)
	client.SendJSON(protocol.WSResponse{
		Type:    "ack",
		ID:      req.ID,
		Status:  "success",
		Message: "View " + string(active),
		Data:    map[string]string{"view": string(active)},
	})
}

func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.clientSubs[client]; ok {
		for topic := range subs {
			delete(h.subscribers[topic], client)
			h.decreaseRefCount(topic)
		}
		delete(h.clientSubs, client)
		h.notifyClients()
	}
	client.Close()
}

// Broadcast sends a feed payload to every subscriber of topic.
func (h *Hub) Broadcast(topic string, payload string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.subscribers[topic]; ok && len(clients) > 0 {
		msg := protocol.Envelope(topic, payload)
		for client := range clients {
			client.SendBytes(msg)
		}
	}
}

// PublishView pushes a navigation change into the feed.
func (h *Hub) PublishView(ctx context.Context, view models.ViewID) error {
	payload, err := json.Marshal(map[string]string{"view": string(view)})
	if err != nil {
		return err
	}
	return h.store.Publish(ctx, protocol.TopicView, string(payload))
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientSubs)
}

func (h *Hub) decreaseRefCount(topic string) {
	h.refCount[topic]--
	if h.refCount[topic] <= 0 {
		if err := h.store.UnsubscribeFromFeed(context.Background(), topic); err != nil {
			h.logger.Error("Failed to unsubscribe upstream", zap.String("topic", topic), zap.Error(err))
		}
		delete(h.refCount, topic)
		delete(h.subscribers, topic)
	}
}

// callers hold h.mu
func (h *Hub) notifyClients() {
	if h.onClients != nil {
		h.onClients(len(h.clientSubs))
	}
}

func (h *Hub) sendAck(c ClientInterface, id, status, msg string) {
	c.SendJSON(protocol.WSResponse{Type: "ack", ID: id, Status: status, Message: msg})
}

func (h *Hub) sendError(c ClientInterface, id, msg string) {
	c.SendJSON(protocol.WSResponse{Type: "error", ID: id, Message: msg})
}
