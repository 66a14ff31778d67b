package catalog

import (
	"errors"
	"fmt"
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"
)

// ErrKioskIsNotConstructed is returned when a Kiosk was not created through
// NewKiosk or RestoreKiosk.
var ErrKioskIsNotConstructed = errors.New("Kiosk must be created via NewKiosk constructor")

// Role describes what a physical kiosk does in the network.
type Role string

const (
	// RoleOrder kiosks face customers and create orders.
	RoleOrder Role = "order"

	// RoleFulfill kiosks sit at a preparation station and service the
	// pending orders of the order kiosk they are bound to.
	RoleFulfill Role = "fulfill"

	// RoleCustomize kiosks let customers customize items before ordering.
	RoleCustomize Role = "customize"
)

// ParseRole validates a raw string against the known kiosk roles.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the role is one of the known kiosk roles.
func (r Role) Validate() error {
	switch r {
	case RoleOrder, RoleFulfill, RoleCustomize:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid kiosk role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// ValidateClientBinding enforces the client kiosk invariant: a fulfill-role
// kiosk must be bound to the order kiosk it services, and no other role may
// carry a binding. Whether the referenced kiosk exists is checked by the
// command handlers against the repository.
func ValidateClientBinding(role Role, clientKioskID *int64) error {
	if role == RoleFulfill && clientKioskID == nil {
		return errs.NewValueIsRequiredErrorWithCause("client_kiosk_id",
			fmt.Errorf("required when role is %q", RoleFulfill))
	}
	if role != RoleFulfill && clientKioskID != nil {
		return errs.NewValueIsInvalidErrorWithCause("client_kiosk_id",
			fmt.Errorf("not allowed when role is not %q", RoleFulfill))
	}
	if clientKioskID != nil && *clientKioskID <= 0 {
		return errs.NewValueIsInvalidError("client_kiosk_id")
	}
	return nil
}

// Kiosk is a physical terminal in the network. Fulfill-role kiosks
// self-reference the order kiosk whose pending orders they service; the
// reference is a directory lookup, not ownership.
type Kiosk struct {
	id            int64
	kioskType     kernel.KioskType
	role          Role
	enabled       bool
	nickname      string
	appVersion    string
	appPlatform   string
	clientKioskID *int64
	createdAt     time.Time

	isConstructed bool
}

// NewKiosk creates a new, unpersisted kiosk.
func NewKiosk(
	kioskType kernel.KioskType,
	role Role,
	enabled bool,
	nickname string,
	appVersion string,
	appPlatform string,
	clientKioskID *int64,
) (*Kiosk, error) {
	k := &Kiosk{isConstructed: true}

	if err := errors.Join(
		k.setKioskType(kioskType),
		k.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := ValidateClientBinding(role, clientKioskID); err != nil {
		return nil, err
	}

	k.enabled = enabled
	k.nickname = nickname
	k.appVersion = appVersion
	k.appPlatform = appPlatform
	k.clientKioskID = clientKioskID
	return k, nil
}

// RestoreKiosk reconstructs a persisted kiosk from storage.
func RestoreKiosk(
	id int64,
	kioskType kernel.KioskType,
	role Role,
	enabled bool,
	nickname string,
	appVersion string,
	appPlatform string,
	clientKioskID *int64,
	createdAt time.Time,
) (*Kiosk, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("kiosk id")
	}

	k, err := NewKiosk(kioskType, role, enabled, nickname, appVersion, appPlatform, clientKioskID)
	if err != nil {
		return nil, err
	}

	k.id = id
	k.createdAt = createdAt
	return k, nil
}

// Validate ensures the Kiosk was built through a constructor.
func (k *Kiosk) Validate() error {
	if k == nil || !k.isConstructed {
		return ErrKioskIsNotConstructed
	}
	return nil
}

// ID returns the database identifier, 0 for unpersisted kiosks.
func (k *Kiosk) ID() int64 {
	return k.id
}

// KioskType returns the station type of the kiosk.
func (k *Kiosk) KioskType() kernel.KioskType {
	return k.kioskType
}

// Role returns the kiosk's role in the network.
func (k *Kiosk) Role() Role {
	return k.role
}

// Enabled reports whether the kiosk is active.
func (k *Kiosk) Enabled() bool {
	return k.enabled
}

// Nickname returns the operator-assigned display name.
func (k *Kiosk) Nickname() string {
	return k.nickname
}

// AppVersion returns the reported client application version.
func (k *Kiosk) AppVersion() string {
	return k.appVersion
}

// AppPlatform returns the reported client platform.
func (k *Kiosk) AppPlatform() string {
	return k.appPlatform
}

// ClientKioskID returns the bound order kiosk's id for fulfill-role kiosks,
// nil otherwise.
func (k *Kiosk) ClientKioskID() *int64 {
	return k.clientKioskID
}

// CreatedAt returns the creation timestamp, zero for unpersisted kiosks.
func (k *Kiosk) CreatedAt() time.Time {
	return k.createdAt
}

// OrderScopeKioskID returns the kiosk id whose pending orders this kiosk
// services: the bound client kiosk for fulfill-role kiosks, the kiosk itself
// otherwise.
func (k *Kiosk) OrderScopeKioskID() int64 {
	if k.role == RoleFulfill && k.clientKioskID != nil {
		return *k.clientKioskID
	}
	return k.id
}

func (k *Kiosk) setKioskType(kioskType kernel.KioskType) error {
	if err := kioskType.Validate(); err != nil {
		return err
	}
	k.kioskType = kioskType
	return nil
}

func (k *Kiosk) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	k.role = role
	return nil
}
