package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:05", want: 545},
		{in: "9:05", want: 545},
		{in: "23:59", want: 1439},
		{in: " 10:30 ", want: 630},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "12:3", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "disjoint", aStart: 600, aEnd: 660, bStart: 720, bEnd: 780, want: false},
		{name: "touching endpoints", aStart: 600, aEnd: 660, bStart: 660, bEnd: 720, want: false},
		{name: "touching reversed", aStart: 660, aEnd: 720, bStart: 600, bEnd: 660, want: false},
		{name: "partial overlap", aStart: 600, aEnd: 660, bStart: 630, bEnd: 690, want: true},
		{name: "contained", aStart: 600, aEnd: 720, bStart: 630, bEnd: 660, want: true},
		{name: "identical", aStart: 600, aEnd: 660, bStart: 600, bEnd: 660, want: true},
		{name: "one minute overlap", aStart: 600, aEnd: 661, bStart: 660, bEnd: 720, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{name: "hours and minutes", start: 600, end: 690, want: "1h 30m"},
		{name: "minutes only", start: 600, end: 645, want: "45m"},
		{name: "whole hours", start: 600, end: 720, want: "2h"},
		{name: "zero", start: 600, end: 600, want: "0m"},
		{name: "negative clamps to zero", start: 700, end: 600, want: "0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationLabel(tt.start, tt.end))
		})
	}
}

func TestIsoWeek(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2024-01-01", want: "2024-W01"}, // Monday, week 1
		{date: "2023-12-31", want: "2023-W52"}, // Sunday of 2023's last week
		{date: "2024-05-01", want: "2024-W18"},
		{date: "2021-01-01", want: "2020-W53"}, // Friday of the prior ISO year's week 53
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsoWeek(d))
		})
	}
}

func TestIsValidIsoWeek(t *testing.T) {
	assert.True(t, IsValidIsoWeek("2024-W01"))
	assert.True(t, IsValidIsoWeek("2023-W52"))
	assert.False(t, IsValidIsoWeek("2024-W1"))
	assert.False(t, IsValidIsoWeek("2024-w01"))
	assert.False(t, IsValidIsoWeek("2024W01"))
	assert.False(t, IsValidIsoWeek(""))
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2024-05-01", "10:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC), got)

	_, err = CombineDateTime("2024-13-01", "10:15")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = CombineDateTime("2024-05-01", "25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
