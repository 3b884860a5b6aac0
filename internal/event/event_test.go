package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "workout", true},
		{"with_spaces", "morning run", true},
		{"unicode", "café", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"tab_only", "\t", false},
		{"embedded_newline", "bad\nname", false},
		{"embedded_control", "bad\x00name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, IsInvalidName(err), "ValidateName(%q) = %v", tt.input, err)
			}
		})
	}
}
