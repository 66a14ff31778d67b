package commands

import (
	"context"

	"kioskhub/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders together with their lines. The
// two deletes run in one transaction so a failure cannot orphan lines.
type DeleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
