package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a partial update of a catalog item.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	ref   kernel.ItemRef
	patch ports.ItemPatch

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item. The raw
// item type, when present, is parsed here; a set slug must be non-empty.
func NewUpdateItemCommand(
	ref kernel.ItemRef,
	slug *string,
	name *string,
	description *string,
	available *bool,
	rawItemType *string,
) (UpdateItemCommand, error) {
	if err := ref.Validate(); err != nil {
		return UpdateItemCommand{}, err
	}

	cmd := UpdateItemCommand{
		ref:   ref,
		guard: guard.NewConstructorGuard(),
	}

	if slug != nil && *slug == "" {
		return UpdateItemCommand{}, errs.NewValueIsRequiredError("slug")
	}
	cmd.patch.Slug = slug
	cmd.patch.Name = name
	cmd.patch.Description = description
	cmd.patch.Available = available

	if rawItemType != nil {
		itemType, err := catalog.ParseItemType(*rawItemType)
		if err != nil {
			return UpdateItemCommand{}, err
		}
		cmd.patch.ItemType = &itemType
	}

	if cmd.patch.IsEmpty() {
		return UpdateItemCommand{}, errs.NewValueIsRequiredError("fields to update")
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// Ref returns the dual-key reference of the item to update.
func (c UpdateItemCommand) Ref() kernel.ItemRef {
	return c.ref
}

// Patch returns the typed partial update.
func (c UpdateItemCommand) Patch() ports.ItemPatch {
	return c.patch
}
