package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisplay(t *testing.T) {
	tests := []struct {
		name        string
		scheme      string
		expectError bool
		expect      string
	}{
		{
			name:   "hex",
			scheme: "hex",
			expect: "48656c6c6f",
		},
		{
			name:   "ascii",
			scheme: "ascii",
			expect: "Hello",
		},
		{
			name:   "base64",
			scheme: "base64",
			expect: "SGVsbG8=",
		},
		{
			name:        "unknown scheme",
			scheme:      "rot13",
			expectError: true,
		},
		{
			name:        "malformed proto scheme",
			scheme:      "proto://missing-message-type",
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			display, err := NewDisplay(test.scheme)
			if test.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expect, display.Display([]byte("Hello")))
			}
		})
	}
}

func TestHexDisplayEmpty(t *testing.T) {
	display := &HexDisplay{}
	assert.Equal(t, "", display.Display(nil))
}
