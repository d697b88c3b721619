package clock

import "time"

// Clock provides the current time. Discount rules and audit log timestamps
// read time through it instead of calling time.Now directly, so processing
// results stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the system time.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	now time.Time
}

func NewFixed(now time.Time) Fixed {
	return Fixed{now: now}
}

func (f Fixed) Now() time.Time {
	return f.now
}
