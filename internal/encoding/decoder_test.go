package encoding_test

import (
	"testing"

	"github.com/lucax88x/datekit/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInput(t *testing.T) {
	testCases := []struct {
		Description string
		input       []byte
		expected    string
	}{
		{"utf8 is kept", []byte("Sep 26, 2025 • 10:45 AM"), "Sep 26, 2025 • 10:45 AM"},
		{"whitespace is trimmed", []byte("  2025-09-26\r\n"), "2025-09-26"},
		{"windows-1252 bullet is decoded", []byte("Sep 26, 2025 \x95 10:45 AM"), "Sep 26, 2025 • 10:45 AM"},
		{"windows-1252 accents are decoded", []byte("26 f\xe9vrier"), "26 février"},
		{"empty", []byte(""), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			decoded, err := encoding.DecodeInput(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, decoded)
		})
	}
}
