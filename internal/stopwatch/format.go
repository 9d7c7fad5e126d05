package stopwatch

import (
	"fmt"
	"time"
)

// FormatTime renders d as MM:SS:CC. Minutes keep growing past 59; there is
// no hour field.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, centis)
}

// FormatLap renders a lap line with a 1-based index.
func FormatLap(index int, d time.Duration) string {
	return fmt.Sprintf("Lap %d: %s", index+1, FormatTime(d))
}
