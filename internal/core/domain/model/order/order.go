package order

import (
	"errors"
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a kiosk order. It owns its line items:
// they are persisted with the order inside one transaction and removed with
// it on deletion.
//
// Invariants:
//   - at least one line item
//   - a valid originating kiosk id and kiosk type
//   - a creatable status (Pending or Completed) when built via NewOrder
//
// The numeric id is assigned by the database; an order built via NewOrder
// carries id 0 until persisted.
type Order struct {
	id             int64
	kioskID        int64
	kioskType      kernel.KioskType
	status         Status
	userProfile    kernel.Document
	surveyResponse kernel.Document
	createdAt      time.Time
	lines          []Line

	isConstructed bool
}

// Line is a single order line referencing a resolved catalog item with
// optional customizations.
type Line struct {
	itemID         int64
	customizations kernel.Document

	isConstructed bool
}

// NewLine creates a validated order line for a resolved catalog item.
func NewLine(itemID int64, customizations kernel.Document) (Line, error) {
	if itemID <= 0 {
		return Line{}, errs.NewValueIsInvalidError("item id")
	}
	return Line{itemID: itemID, customizations: customizations, isConstructed: true}, nil
}

// ItemID returns the resolved catalog item id this line references.
func (l Line) ItemID() int64 {
	return l.itemID
}

// Customizations returns the opaque customization document, nil when absent.
func (l Line) Customizations() kernel.Document {
	return l.customizations
}

// NewOrder creates a new, unpersisted order for the given kiosk.
//
// status carries the explicitly requested creation status: only Completed is
// accepted, and the empty string defaults to Pending. The lines must already
// reference resolved catalog item ids; resolution of slugs and availability
// checks happen before the aggregate is built.
func NewOrder(
	kioskID int64,
	kioskType kernel.KioskType,
	status Status,
	userProfile kernel.Document,
	lines []Line,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setKioskID(kioskID),
		o.setKioskType(kioskType),
		o.setCreationStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.userProfile = userProfile
	return o, nil
}

// RestoreOrder reconstructs a persisted order from storage without applying
// creation-time rules (a stored order may legitimately be Canceled).
func RestoreOrder(
	id int64,
	kioskID int64,
	kioskType kernel.KioskType,
	status Status,
	userProfile kernel.Document,
	surveyResponse kernel.Document,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setKioskID(kioskID),
		o.setKioskType(kioskType),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.userProfile = userProfile
	o.surveyResponse = surveyResponse
	o.createdAt = createdAt
	o.lines = lines
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the database identifier, 0 for unpersisted orders.
func (o *Order) ID() int64 {
	return o.id
}

// KioskID returns the id of the kiosk that created the order.
func (o *Order) KioskID() int64 {
	return o.kioskID
}

// KioskType returns the type of the originating kiosk.
func (o *Order) KioskType() kernel.KioskType {
	return o.kioskType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UserProfile returns the opaque profile document, nil for anonymous orders.
func (o *Order) UserProfile() kernel.Document {
	return o.userProfile
}

// SurveyResponse returns the opaque survey document, nil until submitted.
func (o *Order) SurveyResponse() kernel.Document {
	return o.surveyResponse
}

// CreatedAt returns the creation timestamp, zero for unpersisted orders.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the order's line items.
func (o *Order) Lines() []Line {
	return o.lines
}

func (o *Order) setKioskID(kioskID int64) error {
	if kioskID <= 0 {
		return errs.NewValueIsInvalidError("kiosk_id")
	}
	o.kioskID = kioskID
	return nil
}

func (o *Order) setKioskType(kioskType kernel.KioskType) error {
	if err := kioskType.Validate(); err != nil {
		return err
	}
	o.kioskType = kioskType
	return nil
}

func (o *Order) setCreationStatus(status Status) error {
	if status == "" {
		o.status = Pending
		return nil
	}
	if err := status.ValidateForCreation(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if !line.isConstructed {
			return errs.NewValueIsInvalidError("items")
		}
	}
	o.lines = lines
	return nil
}
