package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status.
//
// The raw status string is parsed at construction time, so an unrecognized
// value is rejected before any persistence work begins; whether the parsed
// status is reachable from the order's current state is decided later by
// the state machine under the row lock.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// Validates that orderID is present and that rawStatus names one of the
// four defined states.
func NewChangeOrderStatusCommand(orderID int64, rawStatus string) (ChangeOrderStatusCommand, error) {
	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the parsed target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}
