package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRoleCapabilities(t *testing.T) {
	crew := SystemRoleCapabilities(RoleCrew)
	assert.True(t, crew.Has(CapView))
	assert.True(t, crew.Has(CapPost))
	assert.False(t, crew.Has(CapPin))
	assert.False(t, crew.Has(CapBan))

	mod := SystemRoleCapabilities(RoleModerator)
	assert.True(t, mod.Has(CapPin))
	assert.True(t, mod.Has(CapDelete))
	assert.False(t, mod.Has(CapSettings))
	assert.False(t, mod.Has(CapRoles))

	co := SystemRoleCapabilities(RoleCoCaptain)
	assert.True(t, co.Has(CapSettings))
	assert.True(t, co.Has(CapPromote))
	assert.True(t, co.Has(CapBan))
	// roles 只有站长有
	assert.False(t, co.Has(CapRoles))

	captain := SystemRoleCapabilities(RoleCaptain)
	assert.Len(t, captain, 8)
	assert.True(t, captain.Has(CapRoles))

	assert.Nil(t, SystemRoleCapabilities("nosuch"))
}

func TestSystemRoleCapabilitiesReturnsCopy(t *testing.T) {
	a := SystemRoleCapabilities(RoleCrew)
	a[0] = CapBan
	b := SystemRoleCapabilities(RoleCrew)
	assert.False(t, b.Has(CapBan))
}

func TestSystemRolePriority(t *testing.T) {
	assert.Equal(t, 10, SystemRolePriority[RoleCrew])
	assert.Equal(t, 50, SystemRolePriority[RoleModerator])
	assert.Equal(t, 90, SystemRolePriority[RoleCoCaptain])
	assert.Equal(t, 100, SystemRolePriority[RoleCaptain])
	assert.Equal(t, 99, MaxCustomRolePriority)
}

func TestIsSystemRole(t *testing.T) {
	assert.True(t, IsSystemRole(RoleCrew))
	assert.True(t, IsSystemRole(RoleCaptain))
	assert.False(t, IsSystemRole("vip"))
}

func TestSeedSystemRoles(t *testing.T) {
	roles := SeedSystemRoles(7)
	require.Len(t, roles, 4)

	bySlug := make(map[string]Role, 4)
	for _, r := range roles {
		assert.Equal(t, uint64(7), r.StationID)
		assert.True(t, r.IsSystem)
		bySlug[r.Slug] = r
	}
	require.Contains(t, bySlug, RoleCrew)
	assert.True(t, bySlug[RoleCrew].IsDefault)
	assert.False(t, bySlug[RoleCaptain].IsDefault)
	assert.Equal(t, 100, bySlug[RoleCaptain].Priority)
	assert.Equal(t, SystemRoleCapabilities(RoleModerator), bySlug[RoleModerator].Capabilities)
}

func TestCapabilitySetScanValue(t *testing.T) {
	set := CapabilitySet{CapView, CapPost}
	v, err := set.Value()
	require.NoError(t, err)

	var got CapabilitySet
	require.NoError(t, got.Scan(v))
	assert.Equal(t, set, got)

	var fromStr CapabilitySet
	require.NoError(t, fromStr.Scan(`["pin","ban"]`))
	assert.True(t, fromStr.Has(CapPin))
	assert.True(t, fromStr.Has(CapBan))

	assert.Error(t, got.Scan(42))
}
