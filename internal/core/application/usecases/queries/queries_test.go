package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		q, err := queries.NewGetOrdersQuery(0, "", "")
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Zero(t, q.Latest())
	})

	t.Run("all filters", func(t *testing.T) {
		q, err := queries.NewGetOrdersQuery(5, "user-1", "juice")
		require.NoError(t, err)
		assert.Equal(t, 5, q.Latest())
		assert.Equal(t, "user-1", q.UserID())
		assert.Equal(t, kernel.KioskTypeJuice, q.KioskType())
	})

	t.Run("negative latest", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(-1, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown kiosk type", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(0, "", "coffee")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var q queries.GetOrdersQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	q, err := queries.NewGetOrdersByStatusQuery("pending", 10)
	require.NoError(t, err)
	assert.Equal(t, order.Pending, q.Status())
	assert.Equal(t, 10, q.Latest())

	_, err = queries.NewGetOrdersByStatusQuery("done", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrdersByStatusQuery("pending", -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewGetOrderByIDQuery(t *testing.T) {
	q, err := queries.NewGetOrderByIDQuery(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), q.OrderID())

	_, err = queries.NewGetOrderByIDQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetKioskQuery(t *testing.T) {
	_, err := queries.NewGetKioskQuery(-3)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListItemsQuery(t *testing.T) {
	q, err := queries.NewListItemsQuery("sweet", "gift", true)
	require.NoError(t, err)
	assert.True(t, q.AvailableOnly())

	_, err = queries.NewListItemsQuery("", "snack", false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetItemQuery(t *testing.T) {
	ref, err := kernel.NewItemRefBySlug("mango-tango")
	require.NoError(t, err)

	q, err := queries.NewGetItemQuery(ref)
	require.NoError(t, err)
	assert.True(t, q.Ref().BySlug())

	_, err = queries.NewGetItemQuery(kernel.ItemRef{})
	require.Error(t, err)
}
