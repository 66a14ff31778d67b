package commands

import (
	"context"
	"fmt"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

// UpdateKioskCommandHandler applies partial updates to kiosks. The client
// binding invariant is checked against the state the kiosk would end up in,
// so a single PATCH can switch role and binding together.
type UpdateKioskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUpdateKioskCommandHandler creates a handler for kiosk updates.
func NewUpdateKioskCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateKioskCommandHandler {
	return UpdateKioskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the kiosk update command.
func (h *UpdateKioskCommandHandler) Handle(ctx context.Context, cmd UpdateKioskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return err
	}

	catalogRepo := uow.CatalogRepository()
	kiosk, err := catalogRepo.GetKiosk(ctx, cmd.KioskID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()

	resultRole := kiosk.Role()
	if patch.Role != nil {
		resultRole = *patch.Role
	}
	resultBinding := kiosk.ClientKioskID()
	if patch.ClientKioskIDSet {
		resultBinding = patch.ClientKioskID
	}

	if err = catalog.ValidateClientBinding(resultRole, resultBinding); err != nil {
		return err
	}

	if patch.ClientKioskIDSet && patch.ClientKioskID != nil {
		if *patch.ClientKioskID == cmd.KioskID() {
			return errs.NewValueIsInvalidErrorWithCause("client_kiosk_id",
				fmt.Errorf("kiosk cannot service itself"))
		}
		exists, err := catalogRepo.KioskExists(ctx, *patch.ClientKioskID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewValueIsInvalidErrorWithCause("client_kiosk_id",
				fmt.Errorf("kiosk %d does not exist", *patch.ClientKioskID))
		}
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().PatchKiosk(ctx, cmd.KioskID(), patch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
