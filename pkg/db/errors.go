package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. Matches both the postgres and sqlite message forms
// since tests run against the sqlite binding.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
