package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
)

// GetOrdersByStatusQueryHandler lists the orders in one status, newest
// first.
type GetOrdersByStatusQueryHandler struct {
	dbProvider DBProvider
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-scoped order
// listing.
func NewGetOrdersByStatusQueryHandler(dbProvider DBProvider) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Most recent orders come first, as in the
// unscoped listing; id breaks timestamp ties.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context, query GetOrdersByStatusQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	dataset := baseOrderSelect().
		Where(goqu.C("status").Eq(query.Status().String())).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if query.Latest() > 0 {
		dataset = dataset.Limit(uint(query.Latest()))
	}

	return selectOrders(ctx, db, dataset)
}
