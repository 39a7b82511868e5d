package domain

import "slices"

// Role represents a tenant member role.
type Role string

const (
	// RoleOwner has full access to the tenant, including settings and billing
	RoleOwner Role = "owner"

	// RoleStaff manages day-to-day bookings, support and notifications
	RoleStaff Role = "staff"

	// RoleAdmin is a platform operator role spanning all tenants
	RoleAdmin Role = "admin"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleOwner, RoleStaff, RoleAdmin}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
