package duration

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// FormatHourMinute renders seconds as H:MM, or "-" when unavailable.
func FormatHourMinute(seconds int, ok bool) string {
	if !ok {
		return "-"
	}

	seconds = max(seconds, 0)

	hrs := seconds / secondsInAnHour
	mins := (seconds % secondsInAnHour) / secondsInAMinute

	return fmt.Sprintf("%d:%02d", hrs, mins)
}

// FormatShort renders seconds as MM:SS, or "--:--" when unavailable. Minutes
// are not wrapped into hours.
func FormatShort(seconds int, ok bool) string {
	if !ok {
		return "--:--"
	}

	seconds = max(seconds, 0)

	return fmt.Sprintf(
		"%02d:%02d",
		seconds/secondsInAMinute,
		seconds%secondsInAMinute,
	)
}

// FormatHuman renders seconds in words limited to the two largest units
// (e.g. "1 hour 30 minutes"), or "-" when unavailable.
func FormatHuman(seconds int, ok bool) string {
	if !ok {
		return "-"
	}

	d := time.Duration(max(seconds, 0)) * time.Second

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}
