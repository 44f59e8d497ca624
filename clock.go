package rrdb

import "time"

// Clock supplies the current time to the writer/reader's target-archive
// selection. No package-level mutable clock is referenced from
// the core; production code uses realClock, tests inject a fixed or
// steppable Clock.
type Clock interface {
	Now() time.Time
}

// realClock is the default Clock, backed by time.Now.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FixedClock is a Clock that always reports the same instant. Useful for
// deterministic tests that need to control "now".
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
