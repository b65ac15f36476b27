package commands

import (
	"context"

	"kitchen/internal/core/domain/model/menu"
)

// AddMenuItemCommandHandler handles catalog maintenance: adding a dish to
// the household menu. Catalog changes do not notify observers; clients see
// new dishes on their next menu fetch.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for adding menu items.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the new item's id.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (int64, error) {
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

	item := &menu.Item{
		Name:            cmd.Name(),
		Description:     cmd.Description(),
		Image:           cmd.Image(),
		PreparationTime: cmd.PreparationTime(),
		Ingredients:     cmd.Ingredients(),
		Available:       true,
	}

	if err := uow.MenuItemRepository().Add(ctx, item); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID, nil
}
