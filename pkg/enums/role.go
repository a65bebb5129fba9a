package enums

import (
	"fmt"
	"strings"
)

// Role is the closed set of platform roles a user can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleGestor Role = "gestor"
	RoleCoder  Role = "coder"
)

var validRoles = []Role{
	RoleAdmin,
	RoleGestor,
	RoleCoder,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role. Matching is case-insensitive so
// "ADMIN" from older clients still resolves.
func ParseRole(value string) (Role, error) {
	normalized := Role(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// Roles returns a copy of every known role.
func Roles() []Role {
	return append([]Role(nil), validRoles...)
}
