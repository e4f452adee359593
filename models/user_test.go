package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFrom(t *testing.T) {
	role, err := RoleFrom("AUTHOR")
	assert.NoError(t, err)
	assert.Equal(t, RoleAuthor, role)

	role, err = RoleFrom("APPROVER")
	assert.NoError(t, err)
	assert.Equal(t, RoleApprover, role)

	_, err = RoleFrom("ADMIN")
	assert.ErrorIs(t, err, BadParameterError)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "GoodPass123!@@", ""},
		{"too short", "short1!", "password must be at least 12 characters"},
		{"no digit", "NoDigitsHere!!!!", "password must contain at least one digit"},
		{"no special", "NoSpecial1234567", "password must contain at least one special character"},
		{"no uppercase", "alllowercase123!", "password must contain at least one uppercase letter"},
		{"no lowercase", "ALLUPPERCASE123!", "password must contain at least one lowercase letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, BadParameterError)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePassword_ChecksDigitBeforeCase(t *testing.T) {
	// several rules broken at once: the digit rule is reported first
	err := ValidatePassword("nodigitnocaps")
	assert.Contains(t, err.Error(), "digit")
}
