package utils

import (
	"strings"
)

// ParseBool interprets a query parameter as a boolean flag; anything other
// than "true" (case-insensitive) is false.
func ParseBool(value string) bool {
	return strings.EqualFold(value, "true")
}
