package commands

import (
	"context"

	"kitchen/internal/core/application/notifications"
)

// ChangeOrderStatusCommandHandler handles the business logic for status
// transitions.
//
// The order row is loaded with a row lock inside the transaction, so the
// load-validate-persist sequence is atomic per order: two concurrent
// requests against the same pending order serialize, the second one
// validating against the status the first one committed. Requests against
// different orders proceed in parallel.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher EventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
//
// Fails with a not-found error for an unknown order id and with the state
// machine's rejection for a disallowed move. On success the change is
// committed and an OrderStatusChanged event is broadcast after the commit.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Broadcast(notifications.OrderStatusChangedEvent{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status().String(),
	})

	return nil
}
