package enums

import (
	"fmt"
	"strings"
)

// UserRole is the closed set of authenticable principal roles.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}

// ParseUserRole normalizes and validates a raw role string.
func ParseUserRole(value string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role %q", value)
	}
	return role, nil
}
