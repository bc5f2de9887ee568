package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+plots@example.co.in", true},
		{"  jane@example.com  ", true},
		{"o'neil@mail-server.example.org", true},

		{"", false},
		{"   ", false},
		{"jane", false},
		{"jane@", false},
		{"@example.com", false},
		{"jane@localhost", false},
		{"jane@example..com", false},
		{"jane@.example.com", false},
		{"Jane Doe <jane@example.com>", false},
		{"jane doe@example.com", false},
		{"jane@example.c", false},
		{"jane@example.c0m", false},
		{"jané@example.com", false},
		{"jane@exa_mple.com", false},
		{"jane@-example.com", false},
		{"jane@example-.com", false},
		{".jane@example.com", false},
		{"jane.@example.com", false},
		{"jane@[192.168.0.1]", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email), "IsValidEmail(%q)", tt.email)
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+91 98765 43210", true},
		{"9876543210", true},
		{"080-2345-6789", true},
		{"+91\u00a098765\u00a043210", true},
		{"98765\u202f43210", true},
		{"98765\u300043210", true},

		{"", false},
		{"++919876543210", false},
		{"98765 4321O", false},
		{"(080) 23456789", false},
		{"98765+43210", false},
		{"98765_43210", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone), "IsValidPhone(%q)", tt.phone)
		})
	}
}

func TestLengthCountsRunes(t *testing.T) {
	assert.Equal(t, 4, Length("₹35L"))
	assert.Equal(t, 15, Length("+91 98765 43210"))
}
