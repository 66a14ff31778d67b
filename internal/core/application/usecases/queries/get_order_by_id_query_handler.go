package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"kioskhub/internal/pkg/errs"
)

// GetOrderByIDQueryHandler fetches one order with its hydrated lines.
type GetOrderByIDQueryHandler struct {
	dbProvider DBProvider
}

// NewGetOrderByIDQueryHandler creates a handler for single-order reads.
func NewGetOrderByIDQueryHandler(dbProvider DBProvider) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Returns ObjectNotFound when the order does not
// exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context, query GetOrderByIDQuery,
) (*OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	dataset := baseOrderSelect().Where(goqu.C("id").Eq(query.OrderID()))
	views, err := selectOrders(ctx, db, dataset)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return &views[0], nil
}
