package fanout

import (
	"sync"
	"time"

	"rently-backend/internal/logger"
)

// Event names published through the hub.
const (
	EventReceiveAlert     = "ReceiveAlert"
	EventAnalyticsUpdated = "AnalyticsUpdated"
)

// Event is one message delivered to a tenant's subscribers.
type Event struct {
	Name    string    `json:"name"`
	Payload any       `json:"payload"`
	Time    time.Time `json:"time"`
}

// Hub groups subscriber connections strictly by tenant id and delivers
// published events to every connection in the group, best-effort and
// at-most-once. A subscriber that cannot keep up has events dropped rather
// than blocking the publisher.
type Hub struct {
	mu     sync.RWMutex
	groups map[string]map[string]chan Event
	buffer int
}

func NewHub() *Hub {
	return &Hub{
		groups: make(map[string]map[string]chan Event),
		buffer: 16,
	}
}

// Subscribe registers a connection under the tenant's group and returns the
// channel events will arrive on. Re-subscribing the same connection id
// replaces the previous channel.
func (h *Hub) Subscribe(tenantID, connID string) <-chan Event {
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[tenantID]
	if !ok {
		group = make(map[string]chan Event)
		h.groups[tenantID] = group
	}
	if old, ok := group[connID]; ok {
		close(old)
	}
	group[connID] = ch
	return ch
}

// Unsubscribe removes the connection from the tenant's group and closes its
// channel. Unknown connections are a no-op.
func (h *Hub) Unsubscribe(tenantID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[tenantID]
	if !ok {
		return
	}
	if ch, ok := group[connID]; ok {
		close(ch)
		delete(group, connID)
	}
	if len(group) == 0 {
		delete(h.groups, tenantID)
	}
}

// Publish delivers the event to every current subscriber of the tenant's
// group, in subscriber-channel order. An empty group is silently a no-op.
func (h *Hub) Publish(tenantID, eventName string, payload any) error {
	event := Event{
		Name:    eventName,
		Payload: payload,
		Time:    time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, ch := range h.groups[tenantID] {
		select {
		case ch <- event:
		default:
			// Slow subscriber: delivery here is at-most-once.
			logger.Debug("Dropping event for slow subscriber", "tenant_id", tenantID, "conn_id", connID, "event", eventName)
		}
	}
	return nil
}

// SubscriberCount reports how many connections are in a tenant's group.
func (h *Hub) SubscriberCount(tenantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[tenantID])
}
