package meters

import (
	"fmt"
	"time"
)

// DefaultIntervalSeconds is the minimum window length of a RateMeter built with NewRateMeter.
const DefaultIntervalSeconds float32 = 0.5

// RateMeter reports how many times something happens per second.
//
// Events are counted with Increment and Add. Update closes the current window
// once at least the configured interval has elapsed since it started, publishing
// count/elapsed as the new rate and starting a new window at the given instant.
// Between closes Rate returns the previously published value.
//
// A RateMeter is owned by a single caller and is not safe for concurrent use.
type RateMeter struct {
	count       uint32
	windowStart time.Time
	rate        float32
	interval    float32
}

// NewRateMeter creates a RateMeter whose first window starts at now and whose interval is 0.5s.
func NewRateMeter(now time.Time) *RateMeter {
	return &RateMeter{
		windowStart: now,
		interval:    DefaultIntervalSeconds,
	}
}

// NewRateMeterWithInterval creates a RateMeter with a custom minimum window length in seconds.
// Returns ErrNonPositiveInterval when seconds is not strictly positive.
func NewRateMeterWithInterval(now time.Time, seconds float32) (*RateMeter, error) {
	if !(seconds > 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveInterval, seconds)
	}
	return &RateMeter{
		windowStart: now,
		interval:    seconds,
	}, nil
}

// Increment counts a single event. The counter wraps past math.MaxUint32.
func (m *RateMeter) Increment() {
	m.count++
}

// Add counts n events.
func (m *RateMeter) Add(n uint32) {
	m.count += n
}

// Update closes the window when now is at least one interval past its start and
// reports whether it did. A window is measured against the actual elapsed time,
// and the next one starts at now, so a late caller gets a rate over the longer span.
// An instant before the window start is ignored.
func (m *RateMeter) Update(now time.Time) bool {
	seconds := float32(now.Sub(m.windowStart).Seconds())
	if seconds < m.interval {
		return false
	}

	m.rate = float32(m.count) / seconds
	m.count = 0
	m.windowStart = now
	return true
}

// Rate returns the events per second of the last closed window, or 0 before the first close.
func (m *RateMeter) Rate() float32 {
	return m.rate
}

// Interval returns the minimum window length.
func (m *RateMeter) Interval() time.Duration {
	return time.Duration(float64(m.interval) * float64(time.Second))
}
