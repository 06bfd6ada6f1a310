package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "html with utf-8 charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "problem json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "json with unsupported charset",
			contentType: "application/json; charset=koi8-r",
			expected:    false,
		},
		{
			name:        "binary",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: ";;;",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestMaskPhoneNumber tests the MaskPhoneNumber function.
func TestMaskPhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "international number",
			input:    "+447911123456",
			expected: "+*********456",
		},
		{
			name:     "number without plus",
			input:    "79111234567",
			expected: "********567",
		},
		{
			name:     "short number",
			input:    "+12",
			expected: "+**",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MaskPhoneNumber(tt.input))
		})
	}
}

// TestMaskToken tests the MaskToken function.
func TestMaskToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "long token",
			input:    "abcdef0123456789uvwxyz",
			expected: "abcdef...uvwxyz",
		},
		{
			name:     "short token is fully masked",
			input:    "abcdef",
			expected: "******",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MaskToken(tt.input))
		})
	}
}
