package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/permissions"
	"rentdesk/shared/constant"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("cancel is limited to admins", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings/{id}/cancel", http.MethodPost)

		assert.Contains(t, permission.Permissions, constant.RoleAdmin)
		assert.NotContains(t, permission.Permissions, constant.RoleOperator)
	})

	t.Run("operators can record payments", func(t *testing.T) {
		permission := data.FindPermissions("/v1/payments/", http.MethodPost)

		assert.Contains(t, permission.Permissions, constant.RoleOperator)
	})

	t.Run("live feed skips auth", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/v1/live", http.MethodGet).Skip)
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Empty(t, data.FindPermissions("/v1/vehicles", http.MethodGet).Permissions)
	})

	t.Run("method is part of the key", func(t *testing.T) {
		assert.Empty(t, data.FindPermissions("/v1/bookings/{id}/cancel", http.MethodGet).Permissions)
	})
}

func TestPermission_Allows(t *testing.T) {
	restricted := permissions.Permission{Permissions: []string{constant.RoleSuperAdmin}}

	assert.True(t, restricted.Allows(constant.RoleSuperAdmin))
	assert.False(t, restricted.Allows(constant.RoleOperator))
	assert.False(t, restricted.Allows(""))

	assert.True(t, permissions.Permission{}.Allows(constant.RoleOperator))
}
