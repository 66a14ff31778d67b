package queries

import (
	"errors"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single catalog item by its dual-key reference.
type GetItemQuery struct { //nolint:recvcheck //using for validation
	ref kernel.ItemRef

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query to fetch one catalog item.
func NewGetItemQuery(ref kernel.ItemRef) (GetItemQuery, error) {
	if err := ref.Validate(); err != nil {
		return GetItemQuery{}, err
	}
	return GetItemQuery{ref: ref, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// Ref returns the dual-key reference of the item to fetch.
func (q GetItemQuery) Ref() kernel.ItemRef {
	return q.ref
}
