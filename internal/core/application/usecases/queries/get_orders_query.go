package queries

import (
	"errors"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, newest first, with optional filters: a
// result cap, a profile id, and a kiosk type. Filters combine with AND.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	latest    int
	userID    string
	kioskType kernel.KioskType

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. latest caps the result
// set and must be positive when given; zero means no cap. rawKioskType may
// be empty to skip the type filter.
func NewGetOrdersQuery(latest int, userID string, rawKioskType string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if latest < 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("latest", latest, 1, nil)
	}
	q.latest = latest

	if rawKioskType != "" {
		kioskType, err := kernel.ParseKioskType(rawKioskType)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.kioskType = kioskType
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Latest returns the result cap, 0 when uncapped.
func (q GetOrdersQuery) Latest() int {
	return q.latest
}

// UserID returns the profile id filter, empty when unset.
func (q GetOrdersQuery) UserID() string {
	return q.userID
}

// KioskType returns the kiosk type filter, empty when unset.
func (q GetOrdersQuery) KioskType() kernel.KioskType {
	return q.kioskType
}
