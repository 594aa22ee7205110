package validators

import "strings"

// TrimPtr trims the pointed-at string in place, leaving nil untouched.
func TrimPtr(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}
