package catalog_test

import (
	"testing"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestParseRole(t *testing.T) {
	t.Run("known_roles", func(t *testing.T) {
		for _, raw := range []string{"order", "fulfill", "customize"} {
			role, err := catalog.ParseRole(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, role.String())
		}
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := catalog.ParseRole("display")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValidateClientBinding(t *testing.T) {
	testCases := []struct {
		name          string
		role          catalog.Role
		clientKioskID *int64
		wantErr       error
	}{
		{name: "fulfill_with_binding", role: catalog.RoleFulfill, clientKioskID: int64Ptr(2)},
		{name: "order_without_binding", role: catalog.RoleOrder},
		{name: "customize_without_binding", role: catalog.RoleCustomize},
		{
			name:    "fulfill_without_binding",
			role:    catalog.RoleFulfill,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:          "order_with_binding",
			role:          catalog.RoleOrder,
			clientKioskID: int64Ptr(2),
			wantErr:       errs.ErrValueIsInvalid,
		},
		{
			name:          "fulfill_with_invalid_binding",
			role:          catalog.RoleFulfill,
			clientKioskID: int64Ptr(0),
			wantErr:       errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.ValidateClientBinding(tc.role, tc.clientKioskID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewKiosk(t *testing.T) {
	t.Run("order_kiosk", func(t *testing.T) {
		k, err := catalog.NewKiosk(kernel.KioskTypeSweet, catalog.RoleOrder, true, "front-desk", "2.1.0", "ios", nil)

		require.NoError(t, err)
		require.NoError(t, k.Validate())
		assert.Equal(t, catalog.RoleOrder, k.Role())
		assert.True(t, k.Enabled())
		assert.Equal(t, "front-desk", k.Nickname())
		assert.Nil(t, k.ClientKioskID())
	})

	t.Run("fulfill_kiosk_requires_binding", func(t *testing.T) {
		_, err := catalog.NewKiosk(kernel.KioskTypeSweet, catalog.RoleFulfill, true, "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fulfill_kiosk_with_binding", func(t *testing.T) {
		k, err := catalog.NewKiosk(kernel.KioskTypeJuice, catalog.RoleFulfill, true, "", "", "", int64Ptr(4))

		require.NoError(t, err)
		require.NotNil(t, k.ClientKioskID())
		assert.Equal(t, int64(4), *k.ClientKioskID())
	})

	t.Run("invalid_type_is_rejected", func(t *testing.T) {
		_, err := catalog.NewKiosk("espresso", catalog.RoleOrder, true, "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var k catalog.Kiosk
		require.ErrorIs(t, k.Validate(), catalog.ErrKioskIsNotConstructed)
	})
}

func TestKiosk_OrderScopeKioskID(t *testing.T) {
	t.Run("fulfill_kiosk_scopes_to_client", func(t *testing.T) {
		k, err := catalog.RestoreKiosk(
			9, kernel.KioskTypeSweet, catalog.RoleFulfill, true, "", "", "", int64Ptr(4), testCreatedAt)
		require.NoError(t, err)

		assert.Equal(t, int64(4), k.OrderScopeKioskID())
	})

	t.Run("order_kiosk_scopes_to_itself", func(t *testing.T) {
		k, err := catalog.RestoreKiosk(
			9, kernel.KioskTypeSweet, catalog.RoleOrder, true, "", "", "", nil, testCreatedAt)
		require.NoError(t, err)

		assert.Equal(t, int64(9), k.OrderScopeKioskID())
	})
}
