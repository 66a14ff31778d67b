package ports

import (
	"context"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
)

// OrderPatch is the typed partial update for an order. Field presence, not
// value, decides what the update statement touches: a nil Status leaves the
// status column alone, while a non-nil SurveyResponse pointing at a nil
// Document sets the column to NULL.
type OrderPatch struct {
	Status         *order.Status
	SurveyResponse *kernel.Document
}

// IsEmpty reports whether the patch carries no fields.
func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.SurveyResponse == nil
}

// OrderRepository defines the persistence contract for order aggregates.
// Read models for the HTTP surface live with the query handlers; this port
// covers the mutations and the lookups the order engine itself needs.
type OrderRepository interface {
	// Add persists a new order and all of its lines. On success the
	// aggregate's id and creation timestamp are populated from storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetLatestForKiosk retrieves the most recently created order for a
	// kiosk, by creation order (highest id wins). Returns ObjectNotFound
	// when the kiosk has no orders. Used by duplicate suppression.
	GetLatestForKiosk(ctx context.Context, kioskID int64) (*order.Order, error)

	// ApplyPatch updates only the columns the patch carries.
	// Returns ObjectNotFound when the order does not exist.
	ApplyPatch(ctx context.Context, id int64, patch OrderPatch) error

	// Delete removes the order and its lines. Returns ObjectNotFound when
	// the order does not exist.
	Delete(ctx context.Context, id int64) error
}
