package catalog

import (
	"errors"
	"fmt"
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemType classifies what an item is, independent of which station prepares
// it. Gifts can be sold from either station type.
type ItemType string

const (
	ItemTypeSweet ItemType = "sweet"
	ItemTypeJuice ItemType = "juice"
	ItemTypeGift  ItemType = "gift"
)

// ParseItemType validates a raw string against the known item types.
func ParseItemType(raw string) (ItemType, error) {
	t := ItemType(raw)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the type is one of the known item types.
func (t ItemType) Validate() error {
	switch t {
	case ItemTypeSweet, ItemTypeJuice, ItemTypeGift:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("item_type",
			fmt.Errorf("%q is not a valid item type", string(t)))
	}
}

func (t ItemType) String() string {
	return string(t)
}

// Item is a catalog entry orderable from kiosks. The slug is a globally
// unique human-readable alternate key; uniqueness is enforced by the
// repository, not here.
type Item struct {
	id          int64
	slug        string
	kioskType   kernel.KioskType
	itemType    ItemType
	name        string
	description string
	available   bool
	createdAt   time.Time

	isConstructed bool
}

// NewItem creates a new, unpersisted catalog item.
func NewItem(
	slug string,
	kioskType kernel.KioskType,
	itemType ItemType,
	name string,
	description string,
	available bool,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setSlug(slug),
		item.setKioskType(kioskType),
		item.setItemType(itemType),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.available = available
	return item, nil
}

// RestoreItem reconstructs a persisted item from storage.
func RestoreItem(
	id int64,
	slug string,
	kioskType kernel.KioskType,
	itemType ItemType,
	name string,
	description string,
	available bool,
	createdAt time.Time,
) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("item id")
	}

	item, err := NewItem(slug, kioskType, itemType, name, description, available)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.createdAt = createdAt
	return item, nil
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the database identifier, 0 for unpersisted items.
func (i *Item) ID() int64 {
	return i.id
}

// Slug returns the unique human-readable alternate key.
func (i *Item) Slug() string {
	return i.slug
}

// KioskType returns the station type that prepares this item.
func (i *Item) KioskType() kernel.KioskType {
	return i.kioskType
}

// ItemType returns the item classification.
func (i *Item) ItemType() ItemType {
	return i.itemType
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the display description.
func (i *Item) Description() string {
	return i.description
}

// Available reports whether the item can currently be ordered.
func (i *Item) Available() bool {
	return i.available
}

// CreatedAt returns the creation timestamp, zero for unpersisted items.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	i.slug = slug
	return nil
}

func (i *Item) setKioskType(kioskType kernel.KioskType) error {
	if err := kioskType.Validate(); err != nil {
		return err
	}
	i.kioskType = kioskType
	return nil
}

func (i *Item) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	i.itemType = itemType
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}
