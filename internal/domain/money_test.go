package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountToMinor(t *testing.T) {
	tests := []struct {
		amount  string
		want    int64
		wantErr bool
	}{
		{"40.00", 4000, false},
		{"40", 4000, false},
		{"0.01", 1, false},
		{"123.45", 12345, false},
		{"-5", -500, false},
		{"0.001", 0, true},
		{"12.345", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			minor, err := AmountToMinor(d)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAmount))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, minor)
		})
	}
}

func TestMinorToAmount(t *testing.T) {
	assert.Equal(t, "40", MinorToAmount(4000).String())
	assert.Equal(t, "0.6", MinorToAmount(60).String())
	assert.Equal(t, "123.45", MinorToAmount(12345).String())
	assert.Equal(t, "0", MinorToAmount(0).String())
}

func TestAmountRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 4000, 123456789} {
		got, err := AmountToMinor(MinorToAmount(minor))
		require.NoError(t, err)
		assert.Equal(t, minor, got)
	}
}
