package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"day and month with dash", "03-10", "03-10-2026"},
		{"day and month with slash", "3/10", "03-10-2026"},
		{"full date with dashes", "15-04-2026", "15-04-2026"},
		{"full date with slashes", "15/04/2026", "15-04-2026"},
		{"two digit year", "15-04-26", "15-04-2026"},
		{"single digit day and month", "5-4", "05-04-2026"},
		{"free form day first", "15 April 2026", "15-04-2026"},
		{"free form short month", "15 Apr 2026", "15-04-2026"},
		{"free form without year", "15 April", "15-04-2026"},
		{"iso date", "2026-04-15", "15-04-2026"},
		{"padded input", "  15-04-2026  ", "15-04-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Invalid(t *testing.T) {
	inputs := []string{"", "tomorrow", "32-01-2026", "15-13-2026", "00-05", "abc-def"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Date(input, testNow)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare morning hour", "10", "10:00 AM"},
		{"bare midnight", "0", "12:00 AM"},
		{"bare noon", "12", "12:00 PM"},
		{"bare afternoon hour", "15", "03:00 PM"},
		{"bare hour over a day", "25", "01:00 AM"},
		{"hour with meridiem", "10am", "10:00 AM"},
		{"hour with spaced meridiem", "10 pm", "10:00 PM"},
		{"hour minute", "10:30", "10:30 AM"},
		{"hour minute 24h", "14:30", "02:30 PM"},
		{"hour minute with meridiem", "10:30 PM", "10:30 PM"},
		{"dotted meridiem", "10:30 p.m.", "10:30 PM"},
		{"canonical form", "09:20 AM", "09:20 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Каноникализация времени идемпотентна: повторный прогон результата
// через Time возвращает его же.
func TestTime_Idempotent(t *testing.T) {
	inputs := []string{"10", "0", "12", "23", "10:30", "14:45", "9am", "12:00 PM"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, err := Time(input)
			require.NoError(t, err)
			twice, err := Time(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestTime_Invalid(t *testing.T) {
	inputs := []string{"", "morning", "10:99", "13 PM", "0 AM", "ten"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Time(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"plain ten digits", "9876543210", "9876543210", true},
		{"formatted number", "+91 98765-43210", "9876543210", true},
		{"extra digits keeps last ten", "919876543210", "9876543210", true},
		{"too short", "98765", "", false},
		{"no digits", "call me", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Phone(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
