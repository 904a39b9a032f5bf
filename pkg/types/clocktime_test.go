package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00 AM", false},
		{"12:40 PM", false},
		{"9:00 AM", true},
		{"21:00", true},
		{"", true},
		{"morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ClockTime(tt.input), got)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, ClockTime("12:00 AM"), FromMinutes(0))
	assert.Equal(t, ClockTime("09:00 AM"), FromMinutes(9*60))
	assert.Equal(t, ClockTime("12:20 PM"), FromMinutes(12*60+20))
	assert.Equal(t, ClockTime("11:40 PM"), FromMinutes(23*60+40))

	// Значения вне суток нормализуются
	assert.Equal(t, ClockTime("01:00 AM"), FromMinutes(25*60))
	assert.Equal(t, ClockTime("11:00 PM"), FromMinutes(-60))
}

func TestMinutesRoundTrip(t *testing.T) {
	c := ClockTime("04:40 PM")

	m, err := c.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 16*60+40, m)
	assert.Equal(t, c, FromMinutes(m))
}

func TestAddMinutes(t *testing.T) {
	c := ClockTime("09:00 AM")

	next, err := c.AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, ClockTime("09:20 AM"), next)

	_, err = ClockTime("bad").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestBefore(t *testing.T) {
	assert.True(t, ClockTime("09:00 AM").Before("05:00 PM"))
	assert.False(t, ClockTime("05:00 PM").Before("09:00 AM"))
	assert.False(t, ClockTime("09:00 AM").Before("09:00 AM"))
	assert.False(t, ClockTime("bad").Before("09:00 AM"))
}
