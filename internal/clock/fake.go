package clock

import "time"

// FakeClock pins Now to a fixed instant so billing-run issue dates are
// deterministic in tests.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward, e.g. into the next billing period.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
