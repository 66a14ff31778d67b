package commands

import (
	"context"

	"kioskhub/internal/core/ports"
)

// DeleteKioskCommandHandler removes kiosks. Orders created from the kiosk
// are kept; they reference the kiosk by id only.
type DeleteKioskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewDeleteKioskCommandHandler creates a handler for kiosk deletion.
func NewDeleteKioskCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteKioskCommandHandler {
	return DeleteKioskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the kiosk deletion command.
func (h *DeleteKioskCommandHandler) Handle(ctx context.Context, cmd DeleteKioskCommand) error {
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

	if err = uow.CatalogRepository().DeleteKiosk(ctx, cmd.KioskID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
