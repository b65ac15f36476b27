package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a single food request by a household member. It is the
// aggregate root that manages the order lifecycle from placement through
// preparation to a terminal state.
//
// Order follows these invariants:
//   - Quantity is positive (at least 1)
//   - Status is always one of the four defined states
//   - UpdatedAt never precedes CreatedAt
//   - UserID, ItemID, Quantity and Note never change after creation;
//     only Status and UpdatedAt are mutable, and only through ChangeStatus
//
// The struct uses private fields to ensure encapsulation; the only mutation
// paths are AssignID (once, by the store) and ChangeStatus (state machine gated).
type Order struct {
	// id is the store-assigned identifier; zero until persisted
	id int64

	// userID identifies the household member who placed the order
	userID int64

	// itemID references the requested menu item
	itemID int64

	// quantity is the number of servings requested (must be positive)
	quantity int

	// note is optional free text for the kitchen ("less spicy")
	note string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once when the order is placed
	createdAt time.Time

	// updatedAt advances on every status mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create an order that has not been persisted yet.
//
// The store-assigned id is not set; it is attached later via AssignID when
// the store persists the record. CreatedAt and UpdatedAt are both set to the
// current UTC time, satisfying the created_at == updated_at property of a
// freshly placed order.
//
// Returns a validation error if userID or itemID is not positive, or if
// quantity is less than 1.
func NewOrder(userID, itemID int64, quantity int, note string) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.note = note
	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted representation.
// Used by the store when mapping database rows back to the domain.
//
// All invariants are re-validated; a row with an unknown status or a
// non-positive quantity is rejected rather than silently accepted.
func RestoreOrder(
	id, userID, itemID int64,
	quantity int,
	note string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid order id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("updated_at %s precedes created_at %s", updatedAt, createdAt))
	}

	o := &Order{
		id:            id,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, or zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the identifier of the member who placed the order.
func (o *Order) UserID() int64 {
	return o.userID
}

// ItemID returns the identifier of the requested menu item.
func (o *Order) ItemID() int64 {
	return o.itemID
}

// Quantity returns the number of servings requested.
func (o *Order) Quantity() int {
	return o.quantity
}

// Note returns the optional free-text note for the kitchen.
func (o *Order) Note() string {
	return o.note
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the most recent status mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignID attaches the store-assigned identifier to a freshly persisted order.
// The identifier can be assigned exactly once; the store is its sole source.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid order id", id))
	}
	o.id = id
	return nil
}

// ChangeStatus transitions the order to the requested status.
//
// The transition is validated by the Status state machine:
//   - an unrecognized status yields InvalidStatusError
//   - a recognized but disallowed move yields IllegalTransitionError
//
// On success the status is updated and UpdatedAt advances to the current
// UTC time. On failure the order is left unmodified.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not a valid user id", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemId", fmt.Errorf("%d is not a valid menu item id", itemID))
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
