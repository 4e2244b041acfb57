package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialValidator_ValidateUsername(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name        string
		username    string
		expectError bool
	}{
		{name: "valid username", username: "testuser", expectError: false},
		{name: "minimum length", username: "abc", expectError: false},
		{name: "maximum length", username: strings.Repeat("a", 32), expectError: false},
		{name: "digits and separators", username: "user_1-2.3", expectError: false},
		{name: "too short", username: "ab", expectError: true},
		{name: "too long", username: strings.Repeat("a", 33), expectError: true},
		{name: "empty", username: "", expectError: true},
		{name: "contains space", username: "bad user", expectError: true},
		{name: "contains slash", username: "bad/user", expectError: true},
		{name: "contains at sign", username: "user@host", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUsername(tt.username)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialValidator_ValidatePassword(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{name: "valid password", password: "password123", expectError: false},
		{name: "minimum length", password: "12345678", expectError: false},
		{name: "maximum length", password: strings.Repeat("a", 72), expectError: false},
		{name: "too short", password: "1234567", expectError: true},
		{name: "too long for bcrypt", password: strings.Repeat("a", 73), expectError: true},
		{name: "empty", password: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialValidator_ValidateRegister(t *testing.T) {
	v := NewCredentialValidator()

	assert.NoError(t, v.ValidateRegister("testuser", "password123"))

	err := v.ValidateRegister("ab", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username")

	err = v.ValidateRegister("testuser", "short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
