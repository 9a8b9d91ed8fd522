package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	auth "github.com/skillquest/go-auth"
)

func TestIsValidRole(t *testing.T) {
	for _, role := range auth.GetAllRoles() {
		assert.True(t, auth.IsValidRole(role))
	}
	assert.False(t, auth.IsValidRole("superuser"))
	assert.False(t, auth.IsValidRole(""))
}

func TestRoleIsAtLeast(t *testing.T) {
	tests := []struct {
		role     auth.UserRole
		minRole  auth.UserRole
		expected bool
	}{
		{auth.RoleAdmin, auth.RoleUser, true},
		{auth.RoleAdmin, auth.RoleAdmin, true},
		{auth.RoleTeacher, auth.RoleStudent, true},
		{auth.RoleStudent, auth.RoleTeacher, false},
		{auth.RoleUser, auth.RoleStudent, false},
		{"unknown", auth.RoleUser, false},
		{auth.RoleAdmin, "unknown", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, auth.RoleIsAtLeast(tc.role, tc.minRole),
			"RoleIsAtLeast(%q, %q)", tc.role, tc.minRole)
	}
}

func TestParseRole(t *testing.T) {
	role, ok := auth.ParseRole("teacher")
	assert.True(t, ok)
	assert.Equal(t, auth.RoleTeacher, role)

	_, ok = auth.ParseRole("wizard")
	assert.False(t, ok)
}
