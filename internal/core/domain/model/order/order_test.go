package order_test

import (
	"testing"
	"time"

	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, itemID int64) order.Line {
	t.Helper()
	line, err := order.NewLine(itemID, nil)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		customizations := kernel.Document{"size": "large"}
		line, err := order.NewLine(3, customizations)

		require.NoError(t, err)
		assert.Equal(t, int64(3), line.ItemID())
		assert.Equal(t, customizations, line.Customizations())
	})

	t.Run("invalid_item_id", func(t *testing.T) {
		_, err := order.NewLine(0, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("defaults_to_pending", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.KioskTypeSweet, "", nil, []order.Line{mustLine(t, 3)})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(1), o.KioskID())
		assert.Equal(t, kernel.KioskTypeSweet, o.KioskType())
		assert.Zero(t, o.ID())
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("explicit_completed_is_allowed", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.KioskTypeJuice, order.Completed, nil, []order.Line{mustLine(t, 3)})

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("explicit_pending_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(1, kernel.KioskTypeSweet, order.Pending, nil, []order.Line{mustLine(t, 3)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("canceled_is_rejected_on_creation", func(t *testing.T) {
		_, err := order.NewOrder(1, kernel.KioskTypeSweet, order.Canceled, nil, []order.Line{mustLine(t, 3)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_lines", func(t *testing.T) {
		_, err := order.NewOrder(1, kernel.KioskTypeSweet, "", nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_value_lines", func(t *testing.T) {
		_, err := order.NewOrder(1, kernel.KioskTypeSweet, "", nil, []order.Line{{}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_kiosk_id", func(t *testing.T) {
		_, err := order.NewOrder(0, kernel.KioskTypeSweet, "", nil, []order.Line{mustLine(t, 3)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_valid_kiosk_type", func(t *testing.T) {
		_, err := order.NewOrder(1, "espresso", "", nil, []order.Line{mustLine(t, 3)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("carries_user_profile", func(t *testing.T) {
		profile := kernel.Document{"id": "user-1"}
		o, err := order.NewOrder(1, kernel.KioskTypeSweet, "", profile, []order.Line{mustLine(t, 3)})

		require.NoError(t, err)
		assert.Equal(t, profile, o.UserProfile())
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("restores_canceled_order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			42, 1, kernel.KioskTypeJuice, order.Canceled,
			kernel.Document{"id": "user-1"}, kernel.Document{"rating": float64(2)},
			createdAt, []order.Line{mustLine(t, 3)},
		)

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, kernel.Document{"rating": float64(2)}, o.SurveyResponse())
	})

	t.Run("rejects_unpersisted_id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 1, kernel.KioskTypeJuice, order.Pending, nil, nil, createdAt, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(42, 1, kernel.KioskTypeJuice, "archived", nil, nil, createdAt, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
