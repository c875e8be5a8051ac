package liveclock

import (
	"time"

	"github.com/ayoisaiah/fractal/internal/duration"
	"github.com/ayoisaiah/fractal/internal/models"
)

// State is the phase of the session a clock is tracking.
type State int

const (
	// Idle means the session has no usable start time.
	Idle State = iota
	// Running means the session is in progress and the clock ticks.
	Running
	// Paused means the reading is frozen until the session resumes.
	Paused
	// Completed means the reading is the final session duration.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// Evaluate determines the state of a session at now and the elapsed seconds
// the clock should show. The reading is never negative.
func Evaluate(
	sess *models.Session,
	instances models.InstanceIndex,
	now time.Time,
) (State, int) {
	if sess == nil {
		return Idle, 0
	}

	if sess.Completed {
		secs, _ := duration.SessionDuration(sess, instances)
		return Completed, secs
	}

	start, ok := sess.Start.Parse()
	if !ok {
		return Idle, 0
	}

	elapsed := wholeSeconds(now.Sub(start)) - sess.TotalPausedSeconds

	if !sess.IsPaused {
		return Running, max(elapsed, 0)
	}

	// time accrued since the current pause began has not been folded into
	// TotalPausedSeconds yet
	if pausedAt, ok := sess.LastPausedAt.Parse(); ok {
		elapsed -= wholeSeconds(now.Sub(pausedAt))
	}

	return Paused, max(elapsed, 0)
}

func wholeSeconds(d time.Duration) int {
	return int(d / time.Second)
}
