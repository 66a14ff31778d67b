package queries

import (
	"errors"

	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order in one lifecycle status,
// newest first, the same recency ordering as the unscoped listing.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status
	latest int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// latest caps the result set and must not be negative; zero means no cap.
func NewGetOrdersByStatusQuery(rawStatus string, latest int) (GetOrdersByStatusQuery, error) {
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	if latest < 0 {
		return GetOrdersByStatusQuery{}, errs.NewValueIsOutOfRangeError("latest", latest, 1, nil)
	}
	return GetOrdersByStatusQuery{status: status, latest: latest, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Latest returns the result cap, 0 when uncapped.
func (q GetOrdersByStatusQuery) Latest() int {
	return q.latest
}
