package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand represents a request to add a catalog item.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	item *catalog.Item

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to add a catalog item. The raw
// kiosk and item types are parsed here; slug uniqueness is checked by the
// handler against the repository.
func NewCreateItemCommand(
	slug string,
	rawKioskType string,
	rawItemType string,
	name string,
	description string,
	available bool,
) (CreateItemCommand, error) {
	kioskType, err := kernel.ParseKioskType(rawKioskType)
	if err != nil {
		return CreateItemCommand{}, err
	}
	itemType, err := catalog.ParseItemType(rawItemType)
	if err != nil {
		return CreateItemCommand{}, err
	}

	item, err := catalog.NewItem(slug, kioskType, itemType, name, description, available)
	if err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// Item returns the item to persist.
func (c CreateItemCommand) Item() *catalog.Item {
	return c.item
}
