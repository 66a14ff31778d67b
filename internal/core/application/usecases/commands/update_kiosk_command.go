package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/ports"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrUpdateKioskCommandIsNotConstructed = errors.New(
	"UpdateKioskCommand must be created via NewUpdateKioskCommand constructor",
)

// UpdateKioskCommand represents a partial update of a kiosk. The client
// kiosk binding is tri-state: omitted, set, or explicitly cleared.
type UpdateKioskCommand struct { //nolint:recvcheck //using for validation
	kioskID int64
	patch   ports.KioskPatch

	guard guard.ConstructorGuard
}

// NewUpdateKioskCommand creates a command to update a kiosk. Raw enums are
// parsed here; the role-versus-binding invariant needs the stored kiosk and
// is enforced by the handler.
func NewUpdateKioskCommand(
	kioskID int64,
	rawKioskType *string,
	rawRole *string,
	enabled *bool,
	nickname *string,
	appVersion *string,
	appPlatform *string,
	clientKioskID *int64,
	clientKioskIDSet bool,
) (UpdateKioskCommand, error) {
	if kioskID <= 0 {
		return UpdateKioskCommand{}, errs.NewValueIsInvalidError("kiosk id")
	}

	cmd := UpdateKioskCommand{
		kioskID: kioskID,
		guard:   guard.NewConstructorGuard(),
	}

	if rawKioskType != nil {
		kioskType, err := kernel.ParseKioskType(*rawKioskType)
		if err != nil {
			return UpdateKioskCommand{}, err
		}
		cmd.patch.KioskType = &kioskType
	}
	if rawRole != nil {
		role, err := catalog.ParseRole(*rawRole)
		if err != nil {
			return UpdateKioskCommand{}, err
		}
		cmd.patch.Role = &role
	}
	cmd.patch.Enabled = enabled
	cmd.patch.Nickname = nickname
	cmd.patch.AppVersion = appVersion
	cmd.patch.AppPlatform = appPlatform
	cmd.patch.ClientKioskID = clientKioskID
	cmd.patch.ClientKioskIDSet = clientKioskIDSet

	if cmd.patch.IsEmpty() {
		return UpdateKioskCommand{}, errs.NewValueIsRequiredError("fields to update")
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateKioskCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKioskCommandIsNotConstructed)
}

// KioskID returns the id of the kiosk to update.
func (c UpdateKioskCommand) KioskID() int64 {
	return c.kioskID
}

// Patch returns the typed partial update.
func (c UpdateKioskCommand) Patch() ports.KioskPatch {
	return c.patch
}
