// Package env reads configuration from environment variables.
package env

import (
	"os"
	"strings"
)

// GetenvOrDefault returns the trimmed value of key, or defaultValue when the
// variable is unset, empty or whitespace only.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}
