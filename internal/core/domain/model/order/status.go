package order

import (
	"fmt"

	"kioskhub/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// There is deliberately no transition machine: update may set any of the
// three values in any order. Creation is stricter — a new order may only
// start as Pending (the default) or Completed (walk-up orders fulfilled on
// the spot).
type Status string

const (
	// Pending orders are waiting to be worked by a fulfillment kiosk.
	Pending Status = "pending"

	// Completed orders have been handed over to the customer.
	Completed Status = "completed"

	// Canceled orders were abandoned or rejected. Only settable via update.
	Canceled Status = "canceled"
)

// ParseStatus validates a raw string against the known order statuses.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case Pending, Completed, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// ValidateForCreation checks the status may be assigned to a brand-new order.
// Only Completed may be requested explicitly; Pending is the implicit default.
func (s Status) ValidateForCreation() error {
	if s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("status can only be omitted or %q", Completed))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
