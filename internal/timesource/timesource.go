// Package timesource abstracts the wall clock and repeating ticks so that
// time-driven code can be exercised deterministically.
package timesource

import (
	"sync"
	"time"
)

// StopFunc cancels a subscription. It is safe to call more than once.
type StopFunc func()

// Source provides the current time and repeating ticks.
type Source interface {
	Now() time.Time
	// Every calls fn with the tick time once per interval until the
	// returned StopFunc is called.
	Every(interval time.Duration, fn func(time.Time)) StopFunc
}

type system struct{}

// System returns a Source backed by the real clock.
func System() Source {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

func (system) Every(interval time.Duration, fn func(time.Time)) StopFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				fn(now)
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

type shifted struct {
	src    Source
	offset time.Duration
}

// Shifted returns a Source that reports the time of src moved by offset.
// Ticks keep their real cadence.
func Shifted(src Source, offset time.Duration) Source {
	if offset == 0 {
		return src
	}

	return shifted{src: src, offset: offset}
}

func (s shifted) Now() time.Time {
	return s.src.Now().Add(s.offset)
}

func (s shifted) Every(interval time.Duration, fn func(time.Time)) StopFunc {
	return s.src.Every(interval, func(t time.Time) {
		fn(t.Add(s.offset))
	})
}
