package notifications

import "time"

// Message types pushed to connected observers. Observers treat
// order_status_update as a "something changed, re-pull" hint and refresh
// their order list; only new_order carries a full record.
const (
	MessageTypeNewOrder          = "new_order"
	MessageTypeOrderStatusUpdate = "order_status_update"
)

// Event is a notification produced exactly once per successful order mutation.
// Events are ephemeral: consumed by zero or more currently connected
// observers, never persisted, never replayed.
type Event interface {
	// MessageType returns the wire type tag of the push message.
	MessageType() string

	// MessageData returns the payload serialized under "data".
	MessageData() any
}

// DenormalizedOrder is an order joined with display fields (member name,
// item name and image) so kitchen observers can render it without a
// follow-up fetch.
type DenormalizedOrder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserName  string    `json:"user_name"`
	ItemName  string    `json:"item_name"`
	ItemImage string    `json:"item_image"`
}

// OrderCreatedEvent announces a newly placed order with its full
// denormalized record.
type OrderCreatedEvent struct {
	Order DenormalizedOrder
}

func (OrderCreatedEvent) MessageType() string {
	return MessageTypeNewOrder
}

func (e OrderCreatedEvent) MessageData() any {
	return e.Order
}

// OrderStatusChangedEvent announces a committed status transition.
// It carries only the order id and the new status; observers re-pull
// their order list for the rest.
type OrderStatusChangedEvent struct {
	OrderID int64
	Status  string
}

func (OrderStatusChangedEvent) MessageType() string {
	return MessageTypeOrderStatusUpdate
}

func (e OrderStatusChangedEvent) MessageData() any {
	return struct {
		OrderID int64  `json:"orderId"`
		Status  string `json:"status"`
	}{OrderID: e.OrderID, Status: e.Status}
}
