package auth

import "crest/internal/shared/constants"

// IsAdmin checks if the role is admin.
func IsAdmin(role string) bool {
	return role == constants.RoleAdmin
}

// IsStaff checks if the role belongs to the back-office audience:
// admin, moderator or staff.
func IsStaff(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleModerator, constants.RoleStaff:
		return true
	}
	return false
}

// StaffRoles returns the set of roles that receive staff fan-out
// notifications.
func StaffRoles() []string {
	return []string{constants.RoleAdmin, constants.RoleModerator, constants.RoleStaff}
}
