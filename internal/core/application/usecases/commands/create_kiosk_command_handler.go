package commands

import (
	"context"
	"fmt"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

// CreateKioskCommandHandler registers kiosks, checking that a fulfill-role
// kiosk's client binding points at a kiosk that exists.
type CreateKioskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCreateKioskCommandHandler creates a handler for kiosk registration.
func NewCreateKioskCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateKioskCommandHandler {
	return CreateKioskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the kiosk registration command and returns the persisted
// kiosk.
func (h *CreateKioskCommandHandler) Handle(
	ctx context.Context, cmd CreateKioskCommand,
) (*catalog.Kiosk, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return nil, err
	}

	kiosk := cmd.Kiosk()
	if clientID := kiosk.ClientKioskID(); clientID != nil {
		exists, err := uow.CatalogRepository().KioskExists(ctx, *clientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("client_kiosk_id",
				fmt.Errorf("kiosk %d does not exist", *clientID))
		}
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().AddKiosk(ctx, kiosk); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return kiosk, nil
}
