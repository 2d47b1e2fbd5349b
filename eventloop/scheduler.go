// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/solidcoredata/corebus/eventloop/intrusive"
)

// ErrInvalidArgument is returned for a non-positive duration where a
// positive one is required.
var ErrInvalidArgument = errors.New("eventloop: invalid argument")

// TaskID identifies a live scheduled task. It is monotonically assigned and
// never reused, so the scheduler can tell "the task that used to be here"
// apart from "a new task that landed in the same slot" purely by
// comparison.
type TaskID int64

// Handle is invoked when a scheduled task fires. now is the scheduler's
// current time in nanoseconds.
type Handle func(now int64)

type taskRecord struct {
	taskID   TaskID
	original TaskID
	fireTime int64
	repeat   int64 // 0 means one-shot
	handle   Handle
	source   string
}

// Scheduler holds an intrusive linked list of scheduled tasks ordered by
// (fireTime, taskID) ascending. All methods except Execute are
// meant to be called only from the event loop thread; Execute is the one
// cross-thread door.
type Scheduler struct {
	clock Clock

	tasks  *intrusive.List[taskRecord]
	byID   map[TaskID]intrusive.Handle
	nextID TaskID
	pool   *Pool[taskRecord]

	mu    sync.Mutex
	inbox []func()

	// firingID/firingCanceled let a Handle cancel or reschedule itself
	// mid-fire: the currently-firing task has already been unlinked from
	// the list (so it can't be picked up twice), but its id is still
	// "live" here so Cancel(taskID) called from inside the handle can
	// suppress the default post-fire repeat reinsertion.
	firingID       TaskID
	firingCanceled bool
}

// NewScheduler returns an empty Scheduler driven by clock.
func NewScheduler(clock Clock) *Scheduler {
	s := &Scheduler{
		clock: clock,
		tasks: intrusive.New[taskRecord](64),
		byID:  make(map[TaskID]intrusive.Handle, 64),
	}
	s.pool = NewPool(func() *taskRecord { return &taskRecord{} }, func(r *taskRecord) { *r = taskRecord{} })
	return s
}

// Execute enqueues fn to run on the event loop thread at the start of the
// next Fire call. It is the scheduler's only MPSC cross-thread channel
//: FIFO per producer, unordered across producers, drained before any
// time-based task runs.
func (s *Scheduler) Execute(fn func()) {
	s.mu.Lock()
	s.inbox = append(s.inbox, fn)
	s.mu.Unlock()
}

func (s *Scheduler) drainInbox() {
	s.mu.Lock()
	inbox := s.inbox
	s.inbox = nil
	s.mu.Unlock()
	for _, fn := range inbox {
		fn()
	}
}

// ScheduleAt schedules h to fire at the given absolute nanos. Fails with
// ErrInvalidArgument if nanos <= 0.
func (s *Scheduler) ScheduleAt(nanos int64, h Handle) (TaskID, error) {
	return s.scheduleAt(nanos, 0, h, "")
}

// ScheduleIn schedules h to fire delay nanoseconds from now.
func (s *Scheduler) ScheduleIn(delay int64, h Handle) (TaskID, error) {
	return s.ScheduleAt(s.clock.Now()+delay, h)
}

// ScheduleNext is an alias of ScheduleIn kept for call-site clarity when the
// delay reads as "as soon as possible after `delay`".
func (s *Scheduler) ScheduleNext(delay int64, h Handle) (TaskID, error) {
	return s.ScheduleIn(delay, h)
}

// ScheduleEvery schedules h to fire repeatedly every interval nanoseconds,
// first firing at now+interval.
func (s *Scheduler) ScheduleEvery(interval int64, h Handle) (TaskID, error) {
	return s.scheduleAt(s.clock.Now()+interval, interval, h, "")
}

func (s *Scheduler) scheduleAt(fireTime, repeat int64, h Handle, source string) (TaskID, error) {
	if fireTime <= 0 {
		return 0, fmt.Errorf("eventloop: fire time %d must be positive: %w", fireTime, ErrInvalidArgument)
	}
	s.nextID++
	id := s.nextID
	rec := s.pool.Get()
	*rec = taskRecord{taskID: id, original: id, fireTime: fireTime, repeat: repeat, handle: h, source: source}
	s.insert(*rec)
	return id, nil
}

// insert places rec into the intrusive list, keeping (fireTime, taskID)
// ascending order.
func (s *Scheduler) insert(rec taskRecord) {
	var before intrusive.Handle = intrusive.Nil
	s.tasks.Each(func(h intrusive.Handle, v *taskRecord) bool {
		if v.fireTime > rec.fireTime || (v.fireTime == rec.fireTime && v.taskID > rec.taskID) {
			before = h
			return false
		}
		return true
	})
	h := s.tasks.InsertBefore(before, rec)
	s.byID[rec.taskID] = h
}

// Reschedule atomically cancels oldID and schedules h to fire at nanos,
// preserving the original task id for tracing.
func (s *Scheduler) Reschedule(oldID TaskID, nanos, repeat int64, h Handle) (TaskID, error) {
	if nanos <= 0 {
		return 0, fmt.Errorf("eventloop: fire time %d must be positive: %w", nanos, ErrInvalidArgument)
	}
	original := oldID
	if hdl, ok := s.byID[oldID]; ok {
		original = s.tasks.Value(hdl).original
	}
	s.Cancel(oldID)
	s.nextID++
	id := s.nextID
	rec := taskRecord{taskID: id, original: original, fireTime: nanos, repeat: repeat, handle: h}
	s.insert(rec)
	return id, nil
}

// Cancel removes taskID if present. Idempotent: canceling an unknown or
// already-fired id is a no-op. Always returns 0.
func (s *Scheduler) Cancel(taskID TaskID) TaskID {
	if taskID != 0 && taskID == s.firingID {
		s.firingCanceled = true
		return 0
	}
	h, ok := s.byID[taskID]
	if !ok {
		return 0
	}
	rec := *s.tasks.Value(h)
	s.tasks.Remove(h)
	delete(s.byID, taskID)
	s.pool.Put(&rec)
	return 0
}

// Len reports the number of pending tasks (excluding inbox entries).
func (s *Scheduler) Len() int { return s.tasks.Len() }

// Fire drains the injection queue, then pops and executes every task whose
// fire time has passed, up to (but not including) tasks inserted during
// this very call — a task whose taskID exceeds maxIDAtEntry is left for the
// next Fire, so a handler cannot starve the loop by scheduling more due
// work mid-pass. Returns nanoseconds until the next pending
// task fires, or math.MaxInt64 if the scheduler is empty.
func (s *Scheduler) Fire() int64 {
	s.drainInbox()
	maxIDAtEntry := s.nextID
	now := s.clock.Now()

	for {
		h := s.tasks.Front()
		if h == intrusive.Nil {
			break
		}
		rec := s.tasks.Value(h)
		if rec.fireTime > now || rec.taskID > maxIDAtEntry {
			break
		}

		taskID := rec.taskID
		original := rec.original
		repeat := rec.repeat
		handle := rec.handle
		source := rec.source
		fireTime := rec.fireTime

		s.tasks.Remove(h)
		delete(s.byID, taskID)

		s.firingID = taskID
		s.firingCanceled = false
		handle(now)
		canceled := s.firingCanceled
		s.firingID = 0

		if !canceled && repeat > 0 {
			next := taskRecord{taskID: taskID, original: original, fireTime: fireTime + repeat, repeat: repeat, handle: handle, source: source}
			s.insert(next)
		}
	}

	if h := s.tasks.Front(); h != intrusive.Nil {
		return s.tasks.Value(h).fireTime - now
	}
	return math.MaxInt64
}
