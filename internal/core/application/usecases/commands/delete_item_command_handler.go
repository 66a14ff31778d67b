package commands

import (
	"context"

	"kioskhub/internal/core/ports"
)

// DeleteItemCommandHandler removes catalog items. Existing order lines keep
// their item id; history is preserved even when the catalog entry goes away.
type DeleteItemCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewDeleteItemCommandHandler creates a handler for item deletion.
func NewDeleteItemCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item deletion command.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().DeleteItem(ctx, cmd.Ref()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
