package commands

import (
	"context"
	"errors"
	"time"

	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/core/domain/services"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
)

// CreateOrderResult reports the outcome of order creation. WasDuplicate is
// true when the request was suppressed and OrderID points at the order the
// earlier request created.
type CreateOrderResult struct {
	OrderID      int64
	WasDuplicate bool
}

// CreateOrderCommandHandler handles order creation: kiosk validation,
// duplicate suppression, catalog resolution, and the transactional insert of
// the order with its lines.
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	duplicates services.DuplicateDetector
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		duplicates: services.NewDuplicateDetector(services.DefaultDuplicateWindow),
	}
}

// Handle processes the order creation command.
//
// The duplicate check reads the kiosk's latest order outside the insert
// transaction. Two requests racing through the window can both pass the
// check and create two orders; the window is an idempotency convenience for
// kiosk retries, not a uniqueness guarantee.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow, err := h.uowFactory.Create()
	if err != nil {
		return CreateOrderResult{}, err
	}

	catalogRepo := uow.CatalogRepository()
	kiosk, err := catalogRepo.GetKiosk(ctx, cmd.KioskID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// A bad kiosk id is a malformed request, not a missing resource.
			return CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause("kiosk_id", err)
		}
		return CreateOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	latest, err := orderRepo.GetLatestForKiosk(ctx, kiosk.ID())
	switch {
	case err == nil:
		if h.duplicates.IsDuplicate(latest, cmd.UserProfile(), time.Now()) {
			return CreateOrderResult{OrderID: latest.ID(), WasDuplicate: true}, nil
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// First order for this kiosk.
	default:
		return CreateOrderResult{}, err
	}

	lines, err := h.resolveLines(ctx, catalogRepo, cmd.Lines())
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(kiosk.ID(), kiosk.KioskType(), cmd.Status(), cmd.UserProfile(), lines)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: aggregate.ID()}, nil
}

// resolveLines turns dual-key item references into order lines carrying
// resolved item ids. Missing items abort with ObjectNotFound, items marked
// unavailable with ObjectUnavailable.
func (h *CreateOrderCommandHandler) resolveLines(
	ctx context.Context, catalogRepo ports.CatalogRepository, inputs []LineInput,
) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(inputs))
	for _, input := range inputs {
		item, err := catalogRepo.ResolveItem(ctx, input.Ref)
		if err != nil {
			return nil, err
		}
		if !item.Available() {
			return nil, errs.NewObjectUnavailableError("item", input.Ref.String())
		}

		line, err := order.NewLine(item.ID(), input.Customizations)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
