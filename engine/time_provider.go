package engine

import (
	"time"

	"github.com/lixenwraith/edgecam/parameter"
)

// Clock abstracts wall time so frame deltas can be driven in tests
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures elapsed time between frames
type FrameClock struct {
	clock Clock
	last  time.Time
	max   time.Duration
}

// NewFrameClock starts measuring from the clock's current time
func NewFrameClock(clock Clock) *FrameClock {
	return &FrameClock{
		clock: clock,
		last:  clock.Now(),
		max:   parameter.MaxFrameDelta,
	}
}

// Tick returns the current time and the delta since the previous Tick
// Delta is capped at MaxFrameDelta and never negative
func (f *FrameClock) Tick() (time.Time, time.Duration) {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > f.max {
		dt = f.max
	}
	return now, dt
}
