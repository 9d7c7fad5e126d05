package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{10 * time.Millisecond, "00:00:01"},
		{999 * time.Millisecond, "00:00:99"},
		{61010 * time.Millisecond, "01:01:01"},
		{59*time.Minute + 59*time.Second + 990*time.Millisecond, "59:59:99"},
		{3600000 * time.Millisecond, "60:00:00"},
		{125 * time.Minute, "125:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime(tc.in), "FormatTime(%s)", tc.in)
	}
}

func TestFormatLapIsOneBased(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Lap 1: 00:01:50", FormatLap(0, 1500*time.Millisecond))
	assert.Equal(t, "Lap 100: 01:00:00", FormatLap(99, time.Minute))
}
