package duration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/fractal/internal/duration"
)

func TestFormatHourMinute(t *testing.T) {
	testCases := []struct {
		Want    string
		Seconds int
		OK      bool
	}{
		{Seconds: 300, OK: true, Want: "0:05"},
		{Seconds: 3660, OK: true, Want: "1:01"},
		{Seconds: 0, OK: true, Want: "0:00"},
		{Seconds: 36000, OK: true, Want: "10:00"},
		{Seconds: 59, OK: true, Want: "0:00"},
		{OK: false, Want: "-"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, duration.FormatHourMinute(tc.Seconds, tc.OK))
	}
}

func TestFormatShort(t *testing.T) {
	testCases := []struct {
		Want    string
		Seconds int
		OK      bool
	}{
		{Seconds: 65, OK: true, Want: "01:05"},
		{Seconds: 0, OK: true, Want: "00:00"},
		{Seconds: 3725, OK: true, Want: "62:05"},
		{Seconds: -4, OK: true, Want: "00:00"},
		{OK: false, Want: "--:--"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, duration.FormatShort(tc.Seconds, tc.OK))
	}
}

func TestFormatHuman(t *testing.T) {
	assert.Equal(t, "1 hour 30 minutes", duration.FormatHuman(5400, true))
	assert.Equal(t, "-", duration.FormatHuman(0, false))
}
