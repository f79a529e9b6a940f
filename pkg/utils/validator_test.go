package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type phonePayload struct {
	Phone string `validate:"required,len=10,number,startswith=0"`
}

type nestedPayload struct {
	Name struct {
		First string `validate:"required,min=2"`
		Last  string `validate:"required,min=2"`
	} `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidatePhonePattern(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid", "0512345567", true},
		{"empty", "", false},
		{"too short", "05123455", false},
		{"too long", "05123455671", false},
		{"letters", "05123455ab", false},
		{"decimal point", "0.12345678", false},
		{"signed", "+512345567", false},
		{"missing leading zero", "1512345567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Validate(phonePayload{Phone: tt.phone})
			if tt.valid {
				require.Empty(t, msg)
			} else {
				require.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateReturnsFirstViolationOnly(t *testing.T) {
	var payload nestedPayload
	payload.Name.First = "a"
	payload.Email = "not-an-email"

	// Fields are checked in declaration order, so the name violation wins
	msg := Validate(payload)
	require.Equal(t, "Name.First: Minimum is 2", msg)
}

func TestValidateStripsStructNameFromPath(t *testing.T) {
	msg := Validate(phonePayload{Phone: "1512345567"})
	require.Equal(t, `Phone: Must start with "0"`, msg)
}

func TestValidateValidPayload(t *testing.T) {
	var payload nestedPayload
	payload.Name.First = "swift"
	payload.Name.Last = "card"
	payload.Email = "user@example.com"

	require.Empty(t, Validate(payload))
}
