package timesource_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/fractal/internal/timesource"
)

var epoch = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func TestFakeAdvanceFiresTicks(t *testing.T) {
	f := timesource.NewFake(epoch)

	var ticks []time.Time

	stop := f.Every(time.Second, func(now time.Time) {
		ticks = append(ticks, now)
	})
	defer stop()

	f.Advance(3500 * time.Millisecond)

	assert.Equal(t, []time.Time{
		epoch.Add(1 * time.Second),
		epoch.Add(2 * time.Second),
		epoch.Add(3 * time.Second),
	}, ticks)
	assert.Equal(t, epoch.Add(3500*time.Millisecond), f.Now())
}

func TestFakeStop(t *testing.T) {
	f := timesource.NewFake(epoch)

	var count int

	stop := f.Every(time.Second, func(time.Time) {
		count++
	})

	f.Advance(2 * time.Second)
	stop()
	stop()
	f.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.Zero(t, f.Subscriptions())
}

func TestFakeStopFromCallback(t *testing.T) {
	f := timesource.NewFake(epoch)

	var (
		count int
		stop  timesource.StopFunc
	)

	stop = f.Every(time.Second, func(time.Time) {
		count++
		stop()
	})

	f.Advance(10 * time.Second)

	assert.Equal(t, 1, count)
}

func TestSystemEvery(t *testing.T) {
	src := timesource.System()

	fired := make(chan time.Time, 1)

	stop := src.Every(10*time.Millisecond, func(now time.Time) {
		select {
		case fired <- now:
		default:
		}
	})
	defer stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a tick from the system source")
	}
}

func TestShifted(t *testing.T) {
	f := timesource.NewFake(epoch)
	src := timesource.Shifted(f, -time.Hour)

	assert.Equal(t, epoch.Add(-time.Hour), src.Now())

	var got []time.Time

	stop := src.Every(time.Minute, func(now time.Time) {
		got = append(got, now)
	})
	defer stop()

	f.Advance(2 * time.Minute)

	assert.Equal(t, []time.Time{
		epoch.Add(-time.Hour + time.Minute),
		epoch.Add(-time.Hour + 2*time.Minute),
	}, got)
}

func TestShiftedZeroOffset(t *testing.T) {
	f := timesource.NewFake(epoch)

	assert.Same(t, f, timesource.Shifted(f, 0))
}
