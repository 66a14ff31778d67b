package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/guard"
)

var ErrCreateKioskCommandIsNotConstructed = errors.New(
	"CreateKioskCommand must be created via NewCreateKioskCommand constructor",
)

// CreateKioskCommand represents a request to register a kiosk in the
// network.
type CreateKioskCommand struct { //nolint:recvcheck //using for validation
	kiosk *catalog.Kiosk

	guard guard.ConstructorGuard
}

// NewCreateKioskCommand creates a command to register a kiosk. The raw type
// and role are parsed here; the client kiosk binding invariant is enforced
// by the domain constructor, and the referenced kiosk's existence by the
// handler.
func NewCreateKioskCommand(
	rawKioskType string,
	rawRole string,
	enabled bool,
	nickname string,
	appVersion string,
	appPlatform string,
	clientKioskID *int64,
) (CreateKioskCommand, error) {
	kioskType, err := kernel.ParseKioskType(rawKioskType)
	if err != nil {
		return CreateKioskCommand{}, err
	}
	role, err := catalog.ParseRole(rawRole)
	if err != nil {
		return CreateKioskCommand{}, err
	}

	kiosk, err := catalog.NewKiosk(kioskType, role, enabled, nickname, appVersion, appPlatform, clientKioskID)
	if err != nil {
		return CreateKioskCommand{}, err
	}

	return CreateKioskCommand{kiosk: kiosk, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateKioskCommand) Validate() error {
	return c.guard.Validate(ErrCreateKioskCommandIsNotConstructed)
}

// Kiosk returns the kiosk to persist.
func (c CreateKioskCommand) Kiosk() *catalog.Kiosk {
	return c.kiosk
}
