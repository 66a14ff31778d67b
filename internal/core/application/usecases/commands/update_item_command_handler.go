package commands

import (
	"context"
	"fmt"

	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

// UpdateItemCommandHandler applies partial updates to catalog items. A slug
// change re-checks uniqueness against every other item.
type UpdateItemCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUpdateItemCommandHandler creates a handler for item updates.
func NewUpdateItemCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return err
	}

	catalogRepo := uow.CatalogRepository()
	patch := cmd.Patch()

	if patch.Slug != nil {
		taken, err := catalogRepo.SlugTaken(ctx, *patch.Slug, cmd.Ref())
		if err != nil {
			return err
		}
		if taken {
			return errs.NewValueIsInvalidErrorWithCause("slug",
				fmt.Errorf("%q is already in use", *patch.Slug))
		}
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().PatchItem(ctx, cmd.Ref(), patch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
