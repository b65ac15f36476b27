package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a member's request to order a quantity of one
// menu item, with an optional note for the kitchen.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(3, 2, 2, "less spicy")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, hub)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID   int64
	itemID   int64
	quantity int
	note     string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that userID and itemID are present and that quantity is at
// least 1. The note is optional free text.
func NewPlaceOrderCommand(userID, itemID int64, quantity int, note string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UserID returns the ordering member's identifier.
func (c PlaceOrderCommand) UserID() int64 {
	return c.userID
}

// ItemID returns the requested menu item's identifier.
func (c PlaceOrderCommand) ItemID() int64 {
	return c.itemID
}

// Quantity returns the number of servings requested.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// Note returns the optional free-text note for the kitchen.
func (c PlaceOrderCommand) Note() string {
	return c.note
}

func (c *PlaceOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsRequiredError("itemId")
	}
	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
