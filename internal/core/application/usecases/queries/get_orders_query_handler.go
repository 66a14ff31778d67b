package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
)

// GetOrdersQueryHandler lists orders for the admin surface and for kiosks
// showing a profile's history.
type GetOrdersQueryHandler struct {
	dbProvider DBProvider
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(dbProvider DBProvider) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{dbProvider: dbProvider}
}

// Handle executes the query. Results are sorted newest first; the profile
// filter matches the "id" key inside the user_profile document.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context, query GetOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db, err := h.dbProvider.DB()
	if err != nil {
		return nil, err
	}

	dataset := baseOrderSelect().
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())

	if query.UserID() != "" {
		dataset = dataset.Where(goqu.L("user_profile->>'id' = ?", query.UserID()))
	}
	if query.KioskType() != "" {
		dataset = dataset.Where(goqu.C("kiosk_type").Eq(query.KioskType().String()))
	}
	if query.Latest() > 0 {
		dataset = dataset.Limit(uint(query.Latest()))
	}

	return selectOrders(ctx, db, dataset)
}
