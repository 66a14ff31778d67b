package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to remove a catalog item.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	ref kernel.ItemRef

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete a catalog item.
func NewDeleteItemCommand(ref kernel.ItemRef) (DeleteItemCommand, error) {
	if err := ref.Validate(); err != nil {
		return DeleteItemCommand{}, err
	}
	return DeleteItemCommand{ref: ref, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// Ref returns the dual-key reference of the item to delete.
func (c DeleteItemCommand) Ref() kernel.ItemRef {
	return c.ref
}
