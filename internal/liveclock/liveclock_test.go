package liveclock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fractal/internal/liveclock"
	"github.com/ayoisaiah/fractal/internal/models"
	"github.com/ayoisaiah/fractal/internal/timesource"
)

var start = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func ts(t time.Time) models.Timestamp {
	return models.NewTimestamp(t)
}

type recorder struct {
	readings []liveclock.Reading
	mu       sync.Mutex
}

func (r *recorder) listen(reading liveclock.Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readings = append(r.readings, reading)
}

func (r *recorder) values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, len(r.readings))
	for i, v := range r.readings {
		out[i] = v.Elapsed
	}

	return out
}

func TestEvaluate(t *testing.T) {
	now := start.Add(10 * time.Minute)

	testCases := []struct {
		Session   *models.Session
		Name      string
		WantState liveclock.State
		Want      int
	}{
		{
			Name:      "nil session is idle",
			WantState: liveclock.Idle,
		},
		{
			Name:      "no start is idle",
			Session:   &models.Session{ID: "s1"},
			WantState: liveclock.Idle,
		},
		{
			Name:      "unparsable start is idle",
			Session:   &models.Session{ID: "s1", Start: "2024-13-45T99:00:00Z"},
			WantState: liveclock.Idle,
		},
		{
			Name: "running subtracts accumulated pauses",
			Session: &models.Session{
				ID:                 "s1",
				Start:              ts(start),
				TotalPausedSeconds: 60,
			},
			WantState: liveclock.Running,
			Want:      540,
		},
		{
			Name: "paused also subtracts the current pause",
			Session: &models.Session{
				ID:                 "s1",
				Start:              ts(start),
				TotalPausedSeconds: 60,
				IsPaused:           true,
				LastPausedAt:       ts(now.Add(-2 * time.Minute)),
			},
			WantState: liveclock.Paused,
			Want:      420,
		},
		{
			Name: "last paused at is ignored while unpaused",
			Session: &models.Session{
				ID:           "s1",
				Start:        ts(start),
				LastPausedAt: ts(now.Add(-2 * time.Minute)),
			},
			WantState: liveclock.Running,
			Want:      600,
		},
		{
			Name: "never negative",
			Session: &models.Session{
				ID:                 "s1",
				Start:              ts(start),
				TotalPausedSeconds: 3600,
			},
			WantState: liveclock.Running,
			Want:      0,
		},
		{
			Name: "start in the future reads zero",
			Session: &models.Session{
				ID:    "s1",
				Start: ts(now.Add(time.Hour)),
			},
			WantState: liveclock.Running,
			Want:      0,
		},
		{
			Name: "completed uses the session duration",
			Session: &models.Session{
				ID:                   "s1",
				Start:                ts(start),
				End:                  ts(start.Add(90 * time.Minute)),
				TotalDurationSeconds: 1000,
				Completed:            true,
			},
			WantState: liveclock.Completed,
			Want:      5400,
		},
		{
			Name: "completed without any duration source reads zero",
			Session: &models.Session{
				ID:        "s1",
				Completed: true,
			},
			WantState: liveclock.Completed,
			Want:      0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			state, got := liveclock.Evaluate(tc.Session, nil, now)

			assert.Equal(t, tc.WantState, state)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestRunningClockTicks(t *testing.T) {
	src := timesource.NewFake(start.Add(30 * time.Second))
	rec := &recorder{}

	c := liveclock.New(src, liveclock.WithListener(rec.listen))
	defer c.Close()

	sess := &models.Session{ID: "s1", Start: ts(start), TotalPausedSeconds: 5}

	c.Track(sess, nil)

	assert.Equal(t, liveclock.Running, c.State())
	assert.Equal(t, 25, c.Elapsed())
	assert.True(t, c.Ticking())

	src.Advance(3 * time.Second)

	assert.Equal(t, 28, c.Elapsed())
	assert.Equal(t, []int{25, 26, 27, 28}, rec.values())
}

func TestPausedClockIsFrozen(t *testing.T) {
	now := start.Add(100 * time.Second)
	src := timesource.NewFake(now)

	unpaused := &models.Session{ID: "s1", Start: ts(start)}
	paused := &models.Session{
		ID:           "s1",
		Start:        ts(start),
		IsPaused:     true,
		LastPausedAt: ts(now.Add(-10 * time.Second)),
	}

	_, running := liveclock.Evaluate(unpaused, nil, now)

	c := liveclock.New(src)
	defer c.Close()

	c.Track(paused, nil)

	require.Equal(t, liveclock.Paused, c.State())
	assert.Equal(t, running-10, c.Elapsed())
	assert.False(t, c.Ticking())
	assert.Zero(t, src.Subscriptions())

	src.Advance(5 * time.Second)

	assert.Equal(t, running-10, c.Elapsed())
}

func TestPauseResumeTransitions(t *testing.T) {
	src := timesource.NewFake(start)
	rec := &recorder{}

	c := liveclock.New(src, liveclock.WithListener(rec.listen))
	defer c.Close()

	sess := &models.Session{ID: "s1", Start: ts(start)}
	c.Track(sess, nil)

	src.Advance(10 * time.Second)
	require.Equal(t, 10, c.Elapsed())

	// pausing cancels the tick immediately
	sess.IsPaused = true
	sess.LastPausedAt = ts(src.Now())
	c.Track(sess, nil)

	assert.Equal(t, liveclock.Paused, c.State())
	assert.Equal(t, 10, c.Elapsed())
	assert.Zero(t, src.Subscriptions())

	src.Advance(20 * time.Second)
	assert.Equal(t, 10, c.Elapsed())

	// resuming folds the pause into the total and restarts the tick
	sess.IsPaused = false
	sess.LastPausedAt = ""
	sess.TotalPausedSeconds = 20
	c.Track(sess, nil)

	assert.Equal(t, liveclock.Running, c.State())
	assert.Equal(t, 10, c.Elapsed())
	assert.Equal(t, 1, src.Subscriptions())

	src.Advance(2 * time.Second)
	assert.Equal(t, 12, c.Elapsed())
}

func TestTrackSameSubjectKeepsTimer(t *testing.T) {
	src := timesource.NewFake(start)
	rec := &recorder{}

	c := liveclock.New(src, liveclock.WithListener(rec.listen))
	defer c.Close()

	sess := &models.Session{ID: "s1", Start: ts(start)}
	c.Track(sess, nil)

	src.Advance(500 * time.Millisecond)

	// an unrelated change must not recompute or reschedule
	sess.Name = "Renamed"
	c.Track(sess, nil)

	src.Advance(500 * time.Millisecond)

	assert.Equal(t, []int{0, 1}, rec.values())
	assert.Equal(t, 1, src.Subscriptions())
}

func TestNewSessionReferenceRecomputes(t *testing.T) {
	src := timesource.NewFake(start.Add(time.Minute))

	c := liveclock.New(src)
	defer c.Close()

	first := &models.Session{ID: "s1", Start: ts(start)}
	c.Track(first, nil)
	require.Equal(t, 60, c.Elapsed())

	second := &models.Session{
		ID:                   "s2",
		Start:                ts(start),
		End:                  ts(start.Add(30 * time.Second)),
		Completed:            true,
		TotalDurationSeconds: 45,
	}
	c.Track(second, nil)

	assert.Equal(t, liveclock.Completed, c.State())
	assert.Equal(t, 30, c.Elapsed())
	assert.Zero(t, src.Subscriptions())

	c.Track(nil, nil)

	assert.Equal(t, liveclock.Idle, c.State())
	assert.Equal(t, 0, c.Elapsed())
}

func TestCloseCancelsTick(t *testing.T) {
	src := timesource.NewFake(start)
	rec := &recorder{}

	c := liveclock.New(src, liveclock.WithListener(rec.listen))

	c.Track(&models.Session{ID: "s1", Start: ts(start)}, nil)
	c.Close()

	src.Advance(5 * time.Second)

	assert.Equal(t, []int{0}, rec.values())
	assert.Zero(t, src.Subscriptions())

	c.Track(&models.Session{ID: "s2", Start: ts(start)}, nil)
	assert.Equal(t, []int{0}, rec.values())
}

func TestWithInterval(t *testing.T) {
	src := timesource.NewFake(start)
	rec := &recorder{}

	c := liveclock.New(
		src,
		liveclock.WithInterval(5*time.Second),
		liveclock.WithListener(rec.listen),
	)
	defer c.Close()

	c.Track(&models.Session{ID: "s1", Start: ts(start)}, nil)
	src.Advance(12 * time.Second)

	assert.Equal(t, []int{0, 5, 10}, rec.values())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", liveclock.Running.String())
	assert.Equal(t, "unknown", liveclock.State(42).String())
}
