// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop

import "time"

// Clock is a monotonic nanosecond time source. The event loop calls
// UpdateTime once per iteration and every other component reads
// Now() rather than calling time.Now() directly, so tests can inject a
// fake clock.
type Clock interface {
	// Now returns the last time recorded by UpdateTime, nanoseconds on an
	// arbitrary monotonic epoch.
	Now() int64
	// UpdateTime refreshes the clock's notion of "now".
	UpdateTime()
}

// SystemClock is a Clock backed by time.Now's monotonic reading.
type SystemClock struct {
	now   int64
	start time.Time
	base  int64
}

// NewSystemClock returns a SystemClock already primed with the current
// time.
func NewSystemClock() *SystemClock {
	c := &SystemClock{}
	c.UpdateTime()
	return c
}

func (c *SystemClock) Now() int64 { return c.now }

func (c *SystemClock) UpdateTime() {
	if c.start.IsZero() {
		c.start = time.Now()
		c.base = c.start.UnixNano()
	}
	c.now = c.base + int64(time.Since(c.start))
}

// ManualClock is a Clock a test can advance explicitly.
type ManualClock struct {
	now int64
}

// NewManualClock returns a ManualClock starting at t nanoseconds.
func NewManualClock(t int64) *ManualClock { return &ManualClock{now: t} }

func (c *ManualClock) Now() int64 { return c.now }

// UpdateTime is a no-op; ManualClock only advances via Set/Advance.
func (c *ManualClock) UpdateTime() {}

// Set moves the clock to t.
func (c *ManualClock) Set(t int64) { c.now = t }

// Advance moves the clock forward by d nanoseconds.
func (c *ManualClock) Advance(d int64) { c.now += d }
