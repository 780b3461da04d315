package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountRoles(t *testing.T) {
	assert.Equal(t, Roles{RoleReader}, AccountRoles(false))

	admin := AccountRoles(true)
	assert.True(t, admin.Contains(RoleReader))
	assert.True(t, admin.Contains(RoleAdmin))
}

func TestRolesFromStrings_DropsUnknownAndRepeated(t *testing.T) {
	roles := RolesFromStrings([]string{"reader", "merchant", "admin", "reader"})

	assert.Equal(t, Roles{RoleReader, RoleAdmin}, roles)
	assert.Equal(t, []string{"reader", "admin"}, roles.ToStrings())
}
