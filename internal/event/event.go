// Package event defines the domain types for tracked events and the
// error taxonomy shared by the store and the CLI.
package event

import (
	"strings"
	"time"
	"unicode"
)

// Event is a named activity with the time it was last done.
type Event struct {
	Name     string    `json:"name"`
	LastDone time.Time `json:"last_done"`
}

// ValidateName checks that a name is usable as an event key.
// Names must be non-empty after trimming and free of control characters.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewInvalidName(name, "name is empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return NewInvalidName(name, "name contains control characters")
		}
	}
	return nil
}
