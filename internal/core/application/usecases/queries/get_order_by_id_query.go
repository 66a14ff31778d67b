package queries

import (
	"errors"

	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its hydrated lines.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to fetch one order.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	if orderID <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsInvalidError("order id")
	}
	return GetOrderByIDQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the id of the order to fetch.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
