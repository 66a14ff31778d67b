package commands

import (
	"errors"

	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrDeleteKioskCommandIsNotConstructed = errors.New(
	"DeleteKioskCommand must be created via NewDeleteKioskCommand constructor",
)

// DeleteKioskCommand represents a request to remove a kiosk from the
// network.
type DeleteKioskCommand struct { //nolint:recvcheck //using for validation
	kioskID int64

	guard guard.ConstructorGuard
}

// NewDeleteKioskCommand creates a command to delete a kiosk.
func NewDeleteKioskCommand(kioskID int64) (DeleteKioskCommand, error) {
	if kioskID <= 0 {
		return DeleteKioskCommand{}, errs.NewValueIsInvalidError("kiosk id")
	}
	return DeleteKioskCommand{kioskID: kioskID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteKioskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteKioskCommandIsNotConstructed)
}

// KioskID returns the id of the kiosk to delete.
func (c DeleteKioskCommand) KioskID() int64 {
	return c.kioskID
}
