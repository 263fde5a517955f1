package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already e164", "+15551234567", "+15551234567"},
		{"national ten digits", "5551234567", "+15551234567"},
		{"formatted", "(555) 123-4567", "+15551234567"},
		{"with country no plus", "15551234567", "+15551234567"},
		{"dots and spaces", "555.123.4567", "+15551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, "+1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	_, err := Normalize("  ", "+1")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Normalize("n/a", "+1")
	assert.ErrorIs(t, err, ErrEmpty)
}
