// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"

	"github.com/solidcoredata/corebus/wire"
)

// Listener receives one raw event. timestamp is the header's nanosecond
// event time as stamped by the sequencer; raw is the full message,
// header included, valid only for the duration of the call.
type Listener func(timestamp int64, msgType byte, raw []byte)

// Dispatcher is a schema-agnostic event mux: per message type an
// appendable list of listeners, plus separate global before- and
// after-dispatch lists. A schema's generated Dispatcher (which hands
// listeners typed decoders instead of raw bytes) covers most subscriber
// code; this one serves code that operates below any particular schema —
// event taps, recorders, and the bus client's own bookkeeping.
//
// Dispatch is single-threaded and non-reentrant. A listener that
// registers another listener for the same type observes that new
// listener on the next event only: each dispatch iterates the slice
// header captured at loop entry.
type Dispatcher struct {
	before []Listener
	after  []Listener
	byType map[byte][]Listener
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{byType: make(map[byte][]Listener)}
}

// OnBefore registers fn to run before any per-type listener, for every
// event, in registration order.
func (d *Dispatcher) OnBefore(fn Listener) {
	d.before = append(d.before, fn)
}

// OnAfter registers fn to run after every per-type listener, for every
// event, in registration order.
func (d *Dispatcher) OnAfter(fn Listener) {
	d.after = append(d.after, fn)
}

// On registers fn for events of the given wire message type.
func (d *Dispatcher) On(msgType byte, fn Listener) {
	d.byType[msgType] = append(d.byType[msgType], fn)
}

// Dispatch reads the header timestamp and message-type byte of
// buf[0:length) and invokes global-before listeners, then per-type
// listeners, then global-after listeners, each in registration order.
// A message type with no registered listeners is ignored, not an
// error. A buffer shorter than a header is ErrMalformed: corruption
// on the event stream itself, which the caller treats as fatal.
func (d *Dispatcher) Dispatch(buf *wire.Buffer, length int) error {
	if length < wire.HeaderFixedSize {
		return fmt.Errorf("pipeline: event length %d shorter than header: %w", length, wire.ErrMalformed)
	}
	timestamp := buf.GetLong(wire.HeaderTimestampOffset)
	msgType := buf.GetByte(wire.HeaderMessageTypeOffset)
	raw := buf.Bytes()[:length]

	for _, fn := range d.before {
		fn(timestamp, msgType, raw)
	}
	for _, fn := range d.byType[msgType] {
		fn(timestamp, msgType, raw)
	}
	for _, fn := range d.after {
		fn(timestamp, msgType, raw)
	}
	return nil
}
