package commands

import (
	"context"

	"kioskhub/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to an order.
type UpdateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command. Only the fields the command
// carries reach the database; absence of the order surfaces as
// ObjectNotFound.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	patch := ports.OrderPatch{
		Status:         cmd.Status(),
		SurveyResponse: cmd.SurveyResponse(),
	}
	if err = uow.OrderRepository().ApplyPatch(ctx, cmd.OrderID(), patch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
