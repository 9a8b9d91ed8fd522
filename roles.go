package auth

// UserRole is the user's role on the platform
type UserRole = string

const (
	// RoleUser is a plain account with no enrollments yet
	RoleUser UserRole = "user"
	// RoleStudent is an account enrolled in at least one course
	RoleStudent UserRole = "student"
	// RoleTeacher can author course content
	RoleTeacher UserRole = "teacher"
	// RoleAdmin administers the platform
	RoleAdmin UserRole = "admin"
)

// IsValidRole checks if the role is one of the predefined platform roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleIsAtLeast checks if role meets the minimum required level
func RoleIsAtLeast(role, minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleUser:    0,
		RoleStudent: 1,
		RoleTeacher: 2,
		RoleAdmin:   3,
	}

	currentLevel, exists := roleHierarchy[role]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleUser,
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}
