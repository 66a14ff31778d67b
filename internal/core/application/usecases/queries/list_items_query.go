package queries

import (
	"errors"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/guard"
)

var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery retrieves catalog items, optionally narrowed to one kiosk
// type, one item type, or to available items only.
type ListItemsQuery struct { //nolint:recvcheck //using for validation
	kioskType     kernel.KioskType
	itemType      catalog.ItemType
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListItemsQuery creates a query to list catalog items. Empty raw types
// skip the corresponding filter.
func NewListItemsQuery(rawKioskType, rawItemType string, availableOnly bool) (ListItemsQuery, error) {
	q := ListItemsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}

	if rawKioskType != "" {
		kioskType, err := kernel.ParseKioskType(rawKioskType)
		if err != nil {
			return ListItemsQuery{}, err
		}
		q.kioskType = kioskType
	}
	if rawItemType != "" {
		itemType, err := catalog.ParseItemType(rawItemType)
		if err != nil {
			return ListItemsQuery{}, err
		}
		q.itemType = itemType
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// KioskType returns the kiosk type filter, empty when unset.
func (q ListItemsQuery) KioskType() kernel.KioskType {
	return q.kioskType
}

// ItemType returns the item type filter, empty when unset.
func (q ListItemsQuery) ItemType() catalog.ItemType {
	return q.itemType
}

// AvailableOnly reports whether unavailable items are filtered out.
func (q ListItemsQuery) AvailableOnly() bool {
	return q.availableOnly
}
