package commands

import (
	"context"
	"fmt"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

// CreateItemCommandHandler adds catalog items, enforcing slug uniqueness.
type CreateItemCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCreateItemCommandHandler creates a handler for item creation.
func NewCreateItemCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command and returns the persisted item.
func (h *CreateItemCommandHandler) Handle(
	ctx context.Context, cmd CreateItemCommand,
) (*catalog.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return nil, err
	}

	catalogRepo := uow.CatalogRepository()
	item := cmd.Item()

	taken, err := catalogRepo.SlugTaken(ctx, item.Slug(), kernel.ItemRef{})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q is already in use", item.Slug()))
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().AddItem(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
