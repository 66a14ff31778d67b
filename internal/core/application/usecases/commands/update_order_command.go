package commands

import (
	"errors"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
	"kioskhub/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order: a new status,
// a survey response, or both. At least one field must be present.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        int64
	status         *order.Status
	surveyResponse *kernel.Document

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. A nil status
// pointer leaves the status alone; a nil surveyResponse pointer leaves the
// survey alone, while a pointer to a nil Document clears it.
func NewUpdateOrderCommand(
	orderID int64,
	rawStatus *string,
	surveyResponse *kernel.Document,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}
	cmd.orderID = orderID

	if rawStatus != nil {
		status, err := order.ParseStatus(*rawStatus)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.status = &status
	}
	cmd.surveyResponse = surveyResponse

	if cmd.status == nil && cmd.surveyResponse == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested status, nil when not being updated.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// SurveyResponse returns the requested survey document, nil when not being
// updated.
func (c UpdateOrderCommand) SurveyResponse() *kernel.Document {
	return c.surveyResponse
}
