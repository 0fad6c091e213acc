package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "national number gets default country code",
			input: "9876543210",
			want:  "+919876543210",
		},
		{
			name:  "already prefixed number is unchanged",
			input: "+919876543210",
			want:  "+919876543210",
		},
		{
			name:  "separators are stripped",
			input: "98765 432-10",
			want:  "+919876543210",
		},
		{
			name:  "number with country code but no plus gets the marker",
			input: "6281234567890",
			want:  "+6281234567890",
		},
		{
			name:    "letters are rejected",
			input:   "98765abcde",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "plus with garbage is rejected",
			input:   "+91abc",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input, "91")
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidDestination)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDestination(t *testing.T) {
	t.Run("phone destination", func(t *testing.T) {
		dest, channel, err := NormalizeDestination("9876543210", "91")
		assert.NoError(t, err)
		assert.Equal(t, "+919876543210", dest)
		assert.Equal(t, models.ChannelSMS, channel)
	})

	t.Run("email destination is lowercased", func(t *testing.T) {
		dest, channel, err := NormalizeDestination("Ravi.Kumar@Example.COM", "91")
		assert.NoError(t, err)
		assert.Equal(t, "ravi.kumar@example.com", dest)
		assert.Equal(t, models.ChannelEmail, channel)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		_, _, err := NormalizeDestination("not-an-email@", "91")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDestination)
	})

	t.Run("empty destination is rejected", func(t *testing.T) {
		_, _, err := NormalizeDestination("   ", "91")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDestination)
	})
}

func TestMaskDestination(t *testing.T) {
	assert.Equal(t, "*********3210", MaskDestination("+919876543210"))
	assert.Equal(t, "ra********@example.com", MaskDestination("ravi.kumar@example.com"))
	assert.Equal(t, "****", MaskDestination("123"))
}
