package queries

import (
	"time"

	"kioskhub/internal/core/domain/model/kernel"
)

// OrderView is the wire representation of an order with its hydrated lines.
type OrderView struct {
	ID             int64           `json:"id"`
	KioskID        int64           `json:"kiosk_id"`
	KioskType      string          `json:"kiosk_type"`
	Status         string          `json:"status"`
	UserProfile    kernel.Document `json:"user_profile,omitempty"`
	SurveyResponse kernel.Document `json:"survey_response,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []OrderItemView `json:"items"`
}

// OrderItemView is one hydrated order line: the stored line joined with the
// catalog fields kiosks render. Catalog fields are zero-valued when the item
// has since been deleted.
type OrderItemView struct {
	ID             int64           `json:"id"`
	ItemID         int64           `json:"item_id"`
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Available      bool            `json:"available"`
	Customizations kernel.Document `json:"customizations,omitempty"`
}

// ItemView is the wire representation of a catalog item.
type ItemView struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	KioskType   string    `json:"kiosk_type"`
	ItemType    string    `json:"item_type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// KioskView is the wire representation of a kiosk. CurrentOrder is only
// populated by the single-kiosk query.
type KioskView struct {
	ID            int64      `json:"id"`
	KioskType     string     `json:"kiosk_type"`
	Role          string     `json:"role"`
	Enabled       bool       `json:"enabled"`
	Nickname      string     `json:"nickname"`
	AppVersion    string     `json:"app_version"`
	AppPlatform   string     `json:"app_platform"`
	ClientKioskID *int64     `json:"client_kiosk_id"`
	CreatedAt     time.Time  `json:"created_at"`
	CurrentOrder  *OrderView `json:"current_order,omitempty"`
}
