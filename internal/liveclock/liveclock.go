// Package liveclock keeps a continuously updated elapsed-time reading for a
// practice session that may be running, paused, or already completed.
package liveclock

import (
	"sync"
	"time"

	"github.com/ayoisaiah/fractal/internal/models"
	"github.com/ayoisaiah/fractal/internal/timesource"
)

const defaultInterval = time.Second

// Reading is emitted to the listener whenever the elapsed value is
// recomputed.
type Reading struct {
	State   State
	Elapsed int
}

// Option configures a Clock.
type Option func(*Clock)

// WithInterval sets how often a running clock recomputes its reading.
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithListener registers fn to receive every reading. fn is called without
// the clock's lock held, from the tick goroutine or from Track.
func WithListener(fn func(Reading)) Option {
	return func(c *Clock) {
		c.listener = fn
	}
}

// subject holds the session fields whose change restarts the clock.
type subject struct {
	session      *models.Session
	start        models.Timestamp
	lastPausedAt models.Timestamp
	pausedSecs   int
	paused       bool
	completed    bool
}

func subjectOf(sess *models.Session) subject {
	if sess == nil {
		return subject{}
	}

	return subject{
		session:      sess,
		start:        sess.Start,
		lastPausedAt: sess.LastPausedAt,
		pausedSecs:   sess.TotalPausedSeconds,
		paused:       sess.IsPaused,
		completed:    sess.Completed,
	}
}

// Clock tracks one session at a time. A running clock owns a single tick
// subscription which is cancelled as soon as the session stops running, the
// subject changes, or the clock is closed.
type Clock struct {
	src       timesource.Source
	listener  func(Reading)
	stop      timesource.StopFunc
	instances models.InstanceIndex
	subject   subject
	interval  time.Duration
	mu        sync.Mutex
	state     State
	elapsed   int
	gen       int
	tracking  bool
	closed    bool
}

// New returns an idle clock driven by src.
func New(src timesource.Source, opts ...Option) *Clock {
	c := &Clock{
		src:      src,
		interval: defaultInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Track makes sess the subject of the clock. The reading is recomputed
// immediately when the session reference, its start, its pause state, or its
// paused total differ from the current subject. Otherwise Track is a no-op
// and a running tick is left alone.
func (c *Clock) Track(sess *models.Session, instances models.InstanceIndex) {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return
	}

	next := subjectOf(sess)
	if c.tracking && next == c.subject {
		c.instances = instances
		c.mu.Unlock()

		return
	}

	c.cancel()

	c.tracking = true
	c.subject = next
	c.instances = instances
	c.gen++

	now := c.src.Now()
	c.state, c.elapsed = Evaluate(sess, instances, now)
	reading := Reading{State: c.state, Elapsed: c.elapsed}

	if c.state == Running {
		gen := c.gen
		c.stop = c.src.Every(c.interval, func(t time.Time) {
			c.tick(gen, t)
		})
	}

	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(reading)
	}
}

func (c *Clock) tick(gen int, now time.Time) {
	c.mu.Lock()

	if c.closed || gen != c.gen || c.state != Running {
		c.mu.Unlock()
		return
	}

	c.state, c.elapsed = Evaluate(c.subject.session, c.instances, now)
	reading := Reading{State: c.state, Elapsed: c.elapsed}

	if c.state != Running {
		c.cancel()
	}

	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(reading)
	}
}

// cancel stops the tick subscription. c.mu must be held.
func (c *Clock) cancel() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

// Elapsed returns the latest reading in seconds.
func (c *Clock) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.elapsed
}

// State returns the state of the tracked session.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Ticking reports whether a tick subscription is active.
func (c *Clock) Ticking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stop != nil
}

// Close cancels any pending tick. Readings are no longer computed once Close
// returns, and later calls to Track are ignored.
func (c *Clock) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.cancel()
}
