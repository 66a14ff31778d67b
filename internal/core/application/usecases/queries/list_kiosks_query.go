package queries

import (
	"errors"

	"kioskhub/internal/pkg/guard"
)

var ErrListKiosksQueryIsNotConstructed = errors.New(
	"ListKiosksQuery must be created via NewListKiosksQuery constructor",
)

// ListKiosksQuery retrieves every kiosk in the network.
type ListKiosksQuery struct {
	guard guard.ConstructorGuard
}

// NewListKiosksQuery creates a query to list all kiosks.
func NewListKiosksQuery() ListKiosksQuery {
	return ListKiosksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListKiosksQuery) Validate() error {
	return q.guard.Validate(ErrListKiosksQueryIsNotConstructed)
}
