package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineInput is one requested order line before catalog resolution: a
// dual-key item reference plus optional customizations.
type LineInput struct {
	Ref            kernel.ItemRef
	Customizations kernel.Document
}

// CreateOrderCommand represents a request to create a new order from a kiosk.
//
// Example:
//
//	ref, _ := kernel.NewItemRefBySlug("mango-tango")
//	cmd, err := NewCreateOrderCommand(12, "", profile, []LineInput{{Ref: ref}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	kioskID     int64
	status      order.Status
	userProfile kernel.Document
	lines       []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. The raw
// status may be empty (defaults to pending) or "completed"; any other value
// is rejected. At least one line is required and every item reference must
// be constructed.
func NewCreateOrderCommand(
	kioskID int64,
	rawStatus string,
	userProfile kernel.Document,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKioskID(kioskID),
		cmd.setStatus(rawStatus),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.userProfile = userProfile
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// KioskID returns the id of the kiosk placing the order.
func (c CreateOrderCommand) KioskID() int64 {
	return c.kioskID
}

// Status returns the requested creation status, empty when omitted.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// UserProfile returns the opaque profile document, nil for anonymous orders.
func (c CreateOrderCommand) UserProfile() kernel.Document {
	return c.userProfile
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

func (c *CreateOrderCommand) setKioskID(kioskID int64) error {
	if kioskID <= 0 {
		return errs.NewValueIsInvalidError("kiosk_id")
	}
	c.kioskID = kioskID
	return nil
}

func (c *CreateOrderCommand) setStatus(rawStatus string) error {
	status := order.Status(rawStatus)
	if rawStatus != "" {
		if err := status.ValidateForCreation(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Ref.Validate(); err != nil {
			return err
		}
	}
	c.lines = lines
	return nil
}
