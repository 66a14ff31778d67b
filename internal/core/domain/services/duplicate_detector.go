package services

import (
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
)

// DefaultDuplicateWindow is how long after an order the same kiosk and
// profile are considered to be retrying rather than ordering again.
const DefaultDuplicateWindow = 30 * time.Second

// DuplicateDetector is a domain service deciding whether a new order
// submission repeats the kiosk's latest order. Kiosk clients resubmit on
// flaky networks; a repeat inside the window should get the earlier order
// back instead of creating a second one.
//
// A submission is a duplicate when the latest order was created inside the
// window and carries the same profile id. Two anonymous submissions compare
// equal, so rapid anonymous retries are also suppressed.
type DuplicateDetector struct {
	window time.Duration
}

// NewDuplicateDetector creates a detector with the given suppression window.
func NewDuplicateDetector(window time.Duration) DuplicateDetector {
	return DuplicateDetector{window: window}
}

// IsDuplicate reports whether a submission with the given profile at the
// given time repeats the latest order.
func (d DuplicateDetector) IsDuplicate(latest *order.Order, profile kernel.Document, at time.Time) bool {
	if latest == nil {
		return false
	}
	if at.Sub(latest.CreatedAt()) > d.window {
		return false
	}
	return kernel.SameField(profile, latest.UserProfile(), "id")
}
