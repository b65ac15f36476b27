package notifications

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Observer is a connected party awaiting real-time order notifications,
// typically a kitchen display over a WebSocket. Implementations must be
// safe for Send to be called from the hub's broadcasting goroutine.
type Observer interface {
	// ID returns a stable identity for registration bookkeeping.
	ID() uuid.UUID

	// Send pushes one serialized message to the observer. An error marks
	// the transport as unusable; the hub responds by unregistering.
	Send(message []byte) error
}

// envelope is the wire shape of every push message.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub maintains the live set of connected observers and fans events out to
// all of them. The observer set is owned by the Hub instance and guarded by
// a mutex; the Hub is injected into command handlers rather than living in
// package-level state.
//
// Delivery is best-effort and at-most-once: an observer that is disconnected
// when an event fires never sees it, and a reconnecting observer is expected
// to refresh via the order list instead of waiting for a replay.
type Hub struct {
	logger *slog.Logger

	// mu guards observers. broadcastMu serializes whole fan-outs so that
	// events for the same order reach every observer in commit order.
	mu          sync.Mutex
	broadcastMu sync.Mutex
	observers   map[uuid.UUID]Observer
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:    logger.With("component", "notification_hub"),
		observers: make(map[uuid.UUID]Observer),
	}
}

// Register adds an observer to the active set. Registering an already
// registered observer identity is a no-op.
func (h *Hub) Register(obs Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[obs.ID()]; ok {
		return
	}
	h.observers[obs.ID()] = obs
	h.logger.Info("observer registered", "observer_id", obs.ID(), "observers", len(h.observers))
}

// Unregister removes an observer from the active set. Safe to call for an
// observer that was never registered or was already removed.
func (h *Hub) Unregister(obs Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[obs.ID()]; !ok {
		return
	}
	delete(h.observers, obs.ID())
	h.logger.Info("observer unregistered", "observer_id", obs.ID(), "observers", len(h.observers))
}

// Observers returns the number of currently registered observers.
func (h *Hub) Observers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast delivers the event to every currently registered observer.
//
// The event is serialized once; delivery then proceeds over a stable
// snapshot of the observer set, so observers added or removed mid-broadcast
// neither crash the iteration nor cause others to be skipped. A failed send
// unregisters that observer and delivery continues to the rest — one dead
// transport never aborts the fan-out.
//
// Delivery failures are recovered here and never surfaced to the mutating
// caller.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(envelope{Type: event.MessageType(), Data: event.MessageData()})
	if err != nil {
		h.logger.Error("event serialization failed", "type", event.MessageType(), "error", err)
		return
	}

	h.broadcastMu.Lock()
	defer h.broadcastMu.Unlock()

	h.mu.Lock()
	snapshot := make([]Observer, 0, len(h.observers))
	for _, obs := range h.observers {
		snapshot = append(snapshot, obs)
	}
	h.mu.Unlock()

	for _, obs := range snapshot {
		if err := obs.Send(message); err != nil {
			h.logger.Warn("observer unreachable, dropping",
				"observer_id", obs.ID(), "type", event.MessageType(), "error", err)
			h.Unregister(obs)
		}
	}
}
