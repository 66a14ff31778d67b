package ports

import (
	"context"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
)

// ItemPatch is the typed partial update for a catalog item.
type ItemPatch struct {
	Slug        *string
	Name        *string
	Description *string
	Available   *bool
	ItemType    *catalog.ItemType
}

// IsEmpty reports whether the patch carries no fields.
func (p ItemPatch) IsEmpty() bool {
	return p.Slug == nil && p.Name == nil && p.Description == nil &&
		p.Available == nil && p.ItemType == nil
}

// KioskPatch is the typed partial update for a kiosk. The client kiosk
// binding is tri-state: absent (ClientKioskIDSet false), set to a kiosk id,
// or cleared (set with a nil value).
type KioskPatch struct {
	KioskType        *kernel.KioskType
	Role             *catalog.Role
	Enabled          *bool
	Nickname         *string
	AppVersion       *string
	AppPlatform      *string
	ClientKioskID    *int64
	ClientKioskIDSet bool
}

// IsEmpty reports whether the patch carries no fields.
func (p KioskPatch) IsEmpty() bool {
	return p.KioskType == nil && p.Role == nil && p.Enabled == nil &&
		p.Nickname == nil && p.AppVersion == nil && p.AppPlatform == nil &&
		!p.ClientKioskIDSet
}

// CatalogRepository defines the persistence contract for catalog records.
// The order engine uses the read side (resolve items, fetch kiosks); the
// write side backs the catalog CRUD surface.
type CatalogRepository interface {
	// ResolveItem fetches an item by its dual-key reference: slug
	// references resolve by slug, numeric references by id.
	// Returns ObjectNotFound when no item matches.
	ResolveItem(ctx context.Context, ref kernel.ItemRef) (*catalog.Item, error)

	// SlugTaken reports whether the slug is used by an item other than the
	// one the exclude reference resolves to. Pass a zero ItemRef to check
	// against the whole catalog.
	SlugTaken(ctx context.Context, slug string, exclude kernel.ItemRef) (bool, error)

	// AddItem persists a new catalog item and populates its id and
	// creation timestamp.
	AddItem(ctx context.Context, item *catalog.Item) error

	// PatchItem updates only the columns the patch carries.
	// Returns ObjectNotFound when the reference does not resolve.
	PatchItem(ctx context.Context, ref kernel.ItemRef, patch ItemPatch) error

	// DeleteItem removes the referenced item.
	// Returns ObjectNotFound when the reference does not resolve.
	DeleteItem(ctx context.Context, ref kernel.ItemRef) error

	// GetKiosk fetches a kiosk by id. Returns ObjectNotFound when absent.
	GetKiosk(ctx context.Context, id int64) (*catalog.Kiosk, error)

	// KioskExists reports whether a kiosk with the given id is stored.
	KioskExists(ctx context.Context, id int64) (bool, error)

	// AddKiosk persists a new kiosk and populates its id and creation
	// timestamp.
	AddKiosk(ctx context.Context, kiosk *catalog.Kiosk) error

	// PatchKiosk updates only the columns the patch carries.
	// Returns ObjectNotFound when the kiosk does not exist.
	PatchKiosk(ctx context.Context, id int64, patch KioskPatch) error

	// DeleteKiosk removes the kiosk.
	// Returns ObjectNotFound when the kiosk does not exist.
	DeleteKiosk(ctx context.Context, id int64) error
}
