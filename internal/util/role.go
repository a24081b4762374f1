package util

import (
	"slices"

	"github.com/suritel/worklog-api/internal/constant"
)

// checks whether the role is one of the required roles.
func HasRole(role constant.UserRole, requiredRoles ...constant.UserRole) bool {
	return slices.Contains(requiredRoles, role)
}

// Managers and admins share the review/statistics surface.
func IsManagerial(role constant.UserRole) bool {
	return HasRole(role, constant.UserRoleAdmin, constant.UserRoleManager)
}
