package kernel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

// ErrItemRefIsNotConstructed is returned when an ItemRef was not created
// through one of its constructors or decoded from JSON.
var ErrItemRefIsNotConstructed = errors.New("ItemRef must be created via NewItemRefByID or NewItemRefBySlug")

// ItemRef is a tagged union referencing a catalog item either by numeric
// identifier or by slug. Kiosk clients send both forms in the same field:
// a JSON number selects lookup by id, a JSON string selects lookup by slug,
// even when the string looks numeric.
type ItemRef struct {
	id     int64
	slug   string
	bySlug bool

	guard guard.ConstructorGuard
}

// NewItemRefByID creates a reference to an item by its numeric identifier.
func NewItemRefByID(id int64) (ItemRef, error) {
	if id <= 0 {
		return ItemRef{}, errs.NewValueIsInvalidError("item id")
	}
	return ItemRef{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewItemRefBySlug creates a reference to an item by its slug.
func NewItemRefBySlug(slug string) (ItemRef, error) {
	if slug == "" {
		return ItemRef{}, errs.NewValueIsRequiredError("item slug")
	}
	return ItemRef{slug: slug, bySlug: true, guard: guard.NewConstructorGuard()}, nil
}

// ParseItemRef builds a reference from a path parameter. A value that parses
// as an integer is treated as an id, anything else as a slug. This differs
// from JSON decoding, where the wire type decides.
func ParseItemRef(raw string) (ItemRef, error) {
	if raw == "" {
		return ItemRef{}, errs.NewValueIsRequiredError("item reference")
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NewItemRefByID(id)
	}
	return NewItemRefBySlug(raw)
}

// Validate ensures the reference was properly constructed. A zero value is
// a client error: it means the wire payload never carried an id.
func (r ItemRef) Validate() error {
	if err := r.guard.Validate(ErrItemRefIsNotConstructed); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("item reference", err)
	}
	return nil
}

// BySlug reports whether the reference resolves by slug rather than by id.
func (r ItemRef) BySlug() bool {
	return r.bySlug
}

// ID returns the numeric identifier. Only meaningful when BySlug is false.
func (r ItemRef) ID() int64 {
	return r.id
}

// Slug returns the slug. Only meaningful when BySlug is true.
func (r ItemRef) Slug() string {
	return r.slug
}

// String renders the reference for error messages.
func (r ItemRef) String() string {
	if r.bySlug {
		return r.slug
	}
	return strconv.FormatInt(r.id, 10)
}

// UnmarshalJSON decodes the dual-key form: JSON strings become slug
// references, integral JSON numbers become id references.
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	var slug string
	if err := json.Unmarshal(data, &slug); err == nil {
		ref, refErr := NewItemRefBySlug(slug)
		if refErr != nil {
			return refErr
		}
		*r = ref
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("must be a number or a slug string: %w", err))
	}

	ref, err := NewItemRefByID(id)
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

// MarshalJSON renders the reference back in its wire form.
func (r ItemRef) MarshalJSON() ([]byte, error) {
	if r.bySlug {
		return json.Marshal(r.slug)
	}
	return json.Marshal(r.id)
}
