package kernel_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actors for all roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleMerchant, kernel.RoleDeliveryMan} {
			actor, err := kernel.NewActor(kernel.NewUUID(), role)

			require.NoError(t, err)
			require.NoError(t, actor.Validate())
			assert.Equal(t, role, actor.Role())
		}
	})

	t.Run("should reject an unconstructed ID", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, kernel.RoleAdmin)

		require.Error(t, err)
	})

	t.Run("should reject the unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})
}

func TestActor_IsAdmin(t *testing.T) {
	admin, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	merchant, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleMerchant)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, merchant.IsAdmin())
}

func TestRoleFromString(t *testing.T) {
	t.Run("should resolve role names", func(t *testing.T) {
		assert.Equal(t, kernel.RoleAdmin, kernel.RoleFromString("Admin"))
		assert.Equal(t, kernel.RoleMerchant, kernel.RoleFromString("Merchant"))
		assert.Equal(t, kernel.RoleDeliveryMan, kernel.RoleFromString("DeliveryMan"))
	})

	t.Run("should resolve unrecognized names to RoleUnknown", func(t *testing.T) {
		assert.Equal(t, kernel.RoleUnknown, kernel.RoleFromString("SUPERUSER"))
		assert.Equal(t, kernel.RoleUnknown, kernel.RoleFromString(""))
	})
}
