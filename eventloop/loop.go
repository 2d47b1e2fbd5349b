// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop

import (
	"math"
	"sync/atomic"
	"time"
)

// Loop combines a Scheduler and a Selector into a single cooperative run
// loop: every dispatch, match, scheduling, and I/O callback runs on one
// logical thread.
type Loop struct {
	Clock     Clock
	Scheduler *Scheduler
	Selector  *Selector
	BusyPoll  bool

	exit atomic.Bool
}

// NewLoop returns a Loop wired to its own Clock, Scheduler, and Selector.
func NewLoop(busyPoll bool) *Loop {
	clock := NewSystemClock()
	return &Loop{
		Clock:     clock,
		Scheduler: NewScheduler(clock),
		Selector:  NewSelector(),
		BusyPoll:  busyPoll,
	}
}

// Exit requests the loop stop before its next iteration. Cooperative: no
// thread interrupts. Safe to call from any goroutine.
func (l *Loop) Exit() {
	l.exit.Store(true)
	l.Selector.Exit()
}

// RunOnce performs exactly one iteration of the loop body: refresh the
// clock, fire due tasks, then select — without blocking when busy-polling
// or when the next task is less than a millisecond out, with a timeout
// otherwise.
func (l *Loop) RunOnce() {
	l.Clock.UpdateTime()
	if l.BusyPoll {
		l.Scheduler.Fire()
		l.Selector.SelectNow()
		return
	}
	next := l.Scheduler.Fire()
	switch {
	case next == math.MaxInt64:
		l.Selector.Select()
	case next < int64(time.Millisecond):
		l.Selector.SelectNow()
	default:
		l.Selector.SelectTimeout(time.Duration(next))
	}
}

// Run drives RunOnce until Exit is called.
func (l *Loop) Run() {
	for !l.exit.Load() {
		l.RunOnce()
	}
}
