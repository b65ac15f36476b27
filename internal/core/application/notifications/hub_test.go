package notifications_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"kitchen/internal/core/application/notifications"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver collects every message it receives, optionally failing
// to simulate a dead transport.
type recordingObserver struct {
	id   uuid.UUID
	fail bool

	mu       sync.Mutex
	messages [][]byte
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{id: uuid.New()}
}

func (o *recordingObserver) ID() uuid.UUID { return o.id }

func (o *recordingObserver) Send(message []byte) error {
	if o.fail {
		return errors.New("connection closed")
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, message)
	return nil
}

func (o *recordingObserver) received() [][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([][]byte, len(o.messages))
	copy(out, o.messages)
	return out
}

func newTestHub() *notifications.Hub {
	return notifications.NewHub(slog.New(slog.DiscardHandler))
}

func TestHub_Register(t *testing.T) {
	t.Run("should be idempotent per observer identity", func(t *testing.T) {
		hub := newTestHub()
		obs := newRecordingObserver()

		hub.Register(obs)
		hub.Register(obs)

		assert.Equal(t, 1, hub.Observers())
	})
}

func TestHub_Unregister(t *testing.T) {
	t.Run("should be a no-op the second time", func(t *testing.T) {
		hub := newTestHub()
		obs := newRecordingObserver()
		hub.Register(obs)

		hub.Unregister(obs)
		hub.Unregister(obs)

		assert.Equal(t, 0, hub.Observers())
	})

	t.Run("should tolerate an observer that was never registered", func(t *testing.T) {
		hub := newTestHub()

		hub.Unregister(newRecordingObserver())

		assert.Equal(t, 0, hub.Observers())
	})
}

func TestHub_Broadcast(t *testing.T) {
	t.Run("should deliver the envelope to every observer", func(t *testing.T) {
		hub := newTestHub()
		observers := make([]*recordingObserver, 5)
		for i := range observers {
			observers[i] = newRecordingObserver()
			hub.Register(observers[i])
		}

		hub.Broadcast(notifications.OrderStatusChangedEvent{OrderID: 7, Status: "preparing"})

		for _, obs := range observers {
			msgs := obs.received()
			require.Len(t, msgs, 1)

			var env struct {
				Type string `json:"type"`
				Data struct {
					OrderID int64  `json:"orderId"`
					Status  string `json:"status"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(msgs[0], &env))
			assert.Equal(t, "order_status_update", env.Type)
			assert.Equal(t, int64(7), env.Data.OrderID)
			assert.Equal(t, "preparing", env.Data.Status)
		}
	})

	t.Run("should continue past unreachable observers", func(t *testing.T) {
		hub := newTestHub()

		reachable := make([]*recordingObserver, 0, 6)
		for i := 0; i < 9; i++ {
			obs := newRecordingObserver()
			// every third observer has a dead transport
			if i%3 == 0 {
				obs.fail = true
			} else {
				reachable = append(reachable, obs)
			}
			hub.Register(obs)
		}

		hub.Broadcast(notifications.OrderStatusChangedEvent{OrderID: 1, Status: "cancelled"})

		for _, obs := range reachable {
			assert.Len(t, obs.received(), 1)
		}
		assert.Equal(t, len(reachable), hub.Observers(), "failed observers should be unregistered")
	})

	t.Run("should carry the full denormalized order on creation", func(t *testing.T) {
		hub := newTestHub()
		obs := newRecordingObserver()
		hub.Register(obs)

		hub.Broadcast(notifications.OrderCreatedEvent{Order: notifications.DenormalizedOrder{
			ID:       12,
			UserID:   3,
			ItemID:   2,
			Quantity: 2,
			Note:     "less spicy",
			Status:   "pending",
			UserName: "Maya",
			ItemName: "Braised Pork",
		}})

		msgs := obs.received()
		require.Len(t, msgs, 1)

		var env struct {
			Type string                          `json:"type"`
			Data notifications.DenormalizedOrder `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msgs[0], &env))
		assert.Equal(t, "new_order", env.Type)
		assert.Equal(t, int64(12), env.Data.ID)
		assert.Equal(t, "Maya", env.Data.UserName)
		assert.Equal(t, "pending", env.Data.Status)
	})

	t.Run("should preserve broadcast order per observer", func(t *testing.T) {
		hub := newTestHub()
		obs := newRecordingObserver()
		hub.Register(obs)

		hub.Broadcast(notifications.OrderCreatedEvent{Order: notifications.DenormalizedOrder{ID: 5, Status: "pending"}})
		hub.Broadcast(notifications.OrderStatusChangedEvent{OrderID: 5, Status: "preparing"})

		msgs := obs.received()
		require.Len(t, msgs, 2)

		var first, second struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(msgs[0], &first))
		require.NoError(t, json.Unmarshal(msgs[1], &second))
		assert.Equal(t, "new_order", first.Type)
		assert.Equal(t, "order_status_update", second.Type)
	})

	t.Run("should tolerate concurrent register, unregister and broadcast", func(t *testing.T) {
		hub := newTestHub()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				obs := newRecordingObserver()
				hub.Register(obs)
				hub.Broadcast(notifications.OrderStatusChangedEvent{OrderID: int64(i), Status: "preparing"})
				hub.Unregister(obs)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 0, hub.Observers())
	})
}

func TestEvent_MessageShapes(t *testing.T) {
	t.Run("status change payload uses orderId key", func(t *testing.T) {
		e := notifications.OrderStatusChangedEvent{OrderID: 9, Status: "completed"}

		raw, err := json.Marshal(e.MessageData())
		require.NoError(t, err)
		assert.JSONEq(t, fmt.Sprintf(`{"orderId":%d,"status":%q}`, 9, "completed"), string(raw))
	})

	t.Run("message types match the wire contract", func(t *testing.T) {
		assert.Equal(t, "new_order", notifications.OrderCreatedEvent{}.MessageType())
		assert.Equal(t, "order_status_update", notifications.OrderStatusChangedEvent{}.MessageType())
	})
}
