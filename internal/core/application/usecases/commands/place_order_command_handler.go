package commands

import (
	"context"

	"kitchen/internal/core/application/notifications"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/user"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
//
// The handler resolves the ordering member and the requested menu item,
// applies role policy (chefs do not place orders), persists the new order in
// a transaction, and only after the commit broadcasts an OrderCreated event
// carrying the denormalized order. Observers therefore never see a
// notification for an order that a concurrent read cannot yet find.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	publisher  EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for transactional persistence and an
// EventPublisher for post-commit notification.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory, publisher EventPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the new order's id.
//
// Failure modes, in validation order:
//   - command not constructed / invalid input
//   - unknown member or menu item (reference not found)
//   - role policy violation (the member's role may not place orders)
//   - menu item currently unavailable
//
// Nothing is persisted and nothing is broadcast on any failure.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}
	if !member.Role.CanPlaceOrders() {
		return 0, NewRolePolicyViolationError(member.Role, "place orders")
	}

	item, err := uow.MenuItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return 0, err
	}
	if !item.Available {
		return 0, ErrMenuItemUnavailable
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.ItemID(), cmd.Quantity(), cmd.Note())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publisher.Broadcast(notifications.OrderCreatedEvent{
		Order: denormalize(newOrder, member, item),
	})

	return newOrder.ID(), nil
}

// denormalize joins the persisted order with display fields so kitchen
// observers can render it without a follow-up fetch.
func denormalize(o *order.Order, member *user.User, item *menu.Item) notifications.DenormalizedOrder {
	return notifications.DenormalizedOrder{
		ID:        o.ID(),
		UserID:    o.UserID(),
		ItemID:    o.ItemID(),
		Quantity:  o.Quantity(),
		Note:      o.Note(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		UserName:  member.Name,
		ItemName:  item.Name,
		ItemImage: item.Image,
	}
}
