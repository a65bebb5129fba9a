package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of the environment variable or fallback when unset or blank.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// FirstOf returns the first non-blank variable among keys, or fallback.
// Hosting platforms inject PORT while local runs use JOBBOARD_APP_PORT.
func FirstOf(fallback string, keys ...string) string {
	for _, key := range keys {
		if val := Get(key, ""); val != "" {
			return val
		}
	}
	return fallback
}
