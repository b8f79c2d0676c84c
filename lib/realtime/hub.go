package realtime

import (
	"sync"
)

// Event names pushed to connected dashboard clients.
const (
	EventSurveyCreated     = "survey_created"
	EventSurveyUpdated     = "survey_updated"
	EventSurveyDeleted     = "survey_deleted"
	EventSurveyDetailAdded = "survey_detail_added"
)

// Event is an invalidation signal: clients re-fetch state from the REST API
// rather than reading changed data out of the payload.
type Event struct {
	Name     string `json:"-"`
	ID       string `json:"id"`
	SurveyID string `json:"survey_id,omitempty"`
	Message  string `json:"message"`
}

// subscriberBuffer bounds how far a slow client may lag before events are
// dropped for it.
const subscriberBuffer = 16

// Hub is the observer registry for the push channel. Each connected session
// subscribes; a broadcast iterates the registry. Delivery is best-effort:
// sessions connected before an event receive it, nobody else ever does.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new session and returns its event channel
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a session and closes its channel
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers the event to every current subscriber. The send never
// blocks: a subscriber whose buffer is full misses the event.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of connected sessions
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
