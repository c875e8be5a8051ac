package timesource

import (
	"sort"
	"sync"
	"time"
)

type subscription struct {
	due      time.Time
	fn       func(time.Time)
	interval time.Duration
	id       int
}

// Fake is a manually driven Source. Ticks fire synchronously inside Advance,
// in due-time order.
type Fake struct {
	now  time.Time
	subs map[int]*subscription
	mu   sync.Mutex
	next int
}

// NewFake returns a Fake whose clock reads now.
func NewFake(now time.Time) *Fake {
	return &Fake{
		now:  now,
		subs: make(map[int]*subscription),
	}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *Fake) Every(interval time.Duration, fn func(time.Time)) StopFunc {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	id := f.next

	f.subs[id] = &subscription{
		id:       id,
		interval: interval,
		due:      f.now.Add(interval),
		fn:       fn,
	}

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		delete(f.subs, id)
	}
}

// Subscriptions returns the number of live subscriptions.
func (f *Fake) Subscriptions() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subs)
}

// Set moves the clock to t without firing any ticks.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = t

	for _, s := range f.subs {
		if s.due.Before(t) {
			s.due = t.Add(s.interval)
		}
	}
}

// Advance moves the clock forward by d, firing every tick that falls due on
// the way. Subscriptions cancelled by a tick callback do not fire again.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()

		s := f.earliest(target)
		if s == nil {
			f.now = target
			f.mu.Unlock()

			return
		}

		f.now = s.due
		s.due = s.due.Add(s.interval)
		now, fn := f.now, s.fn

		f.mu.Unlock()

		fn(now)
	}
}

// earliest returns the subscription due soonest at or before target.
func (f *Fake) earliest(target time.Time) *subscription {
	due := make([]*subscription, 0, len(f.subs))

	for _, s := range f.subs {
		if !s.due.After(target) {
			due = append(due, s)
		}
	}

	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}

		return due[i].due.Before(due[j].due)
	})

	return due[0]
}
