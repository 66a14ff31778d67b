package queries

import (
	"errors"

	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrGetKioskQueryIsNotConstructed = errors.New(
	"GetKioskQuery must be created via NewGetKioskQuery constructor",
)

// GetKioskQuery retrieves a kiosk together with the current order it should
// be working on.
type GetKioskQuery struct { //nolint:recvcheck //using for validation
	kioskID int64

	guard guard.ConstructorGuard
}

// NewGetKioskQuery creates a query to fetch one kiosk.
func NewGetKioskQuery(kioskID int64) (GetKioskQuery, error) {
	if kioskID <= 0 {
		return GetKioskQuery{}, errs.NewValueIsInvalidError("kiosk id")
	}
	return GetKioskQuery{kioskID: kioskID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKioskQuery) Validate() error {
	return q.guard.Validate(ErrGetKioskQueryIsNotConstructed)
}

// KioskID returns the id of the kiosk to fetch.
func (q GetKioskQuery) KioskID() int64 {
	return q.kioskID
}
