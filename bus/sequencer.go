// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus implements the single-writer sequencer: the admission
// authority that turns per-application commands into a totally ordered
// event log, and the replay buffer late-joining subscribers catch up
// from.
package bus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/solidcoredata/corebus/wire"
)

// ErrRejected is returned by Admit when a command has no registered
// handler, or its handler itself rejects the command. A rejected command
// does not advance its application's expected sequence number. When a
// RejectBuilder is wired, the rejection itself is appended to the event
// log as a SequencerReject event.
var ErrRejected = errors.New("bus: command rejected")

// ErrUnknownApplication is returned by Admit for an applicationID that was
// never registered via RegisterApplication.
var ErrUnknownApplication = errors.New("bus: unknown application")

// ErrOutOfSequence is returned by Admit when a command's
// applicationSequenceNumber does not match the publisher's expected next
// value.
var ErrOutOfSequence = errors.New("bus: out-of-sequence")

// CommandHandler decodes and reacts to one admitted command, emitting zero
// or more events through e. Handlers run synchronously on the
// sequencer's single thread; a handler must never block.
type CommandHandler func(e *Emitter, applicationID byte, raw []byte) error

// RejectBuilder encodes one SequencerReject event's wire bytes for an
// admission-level failure: out-of-sequence, no registered handler,
// malformed buffer, or a handler error. SequencerReject is a message of
// the concrete schema running over the sequencer, not part of this
// schema-agnostic core package, so a RejectBuilder is wired in by whichever
// schema package the sequencer is running (see matching.Engine for the
// clobschema wiring). A Sequencer with no RejectBuilder set still rejects
// correctly; it simply surfaces the failure only as the Go error Admit
// returns, without putting a SequencerReject event on the bus.
type RejectBuilder func(applicationID byte, originalMessageType byte, originalCommand []byte, reason string) []byte

// Emitter is the narrow surface a CommandHandler uses to publish the
// events its command produces, in commit order.
type Emitter struct {
	seq *Sequencer
}

// Publish stamps and appends one event to the sequencer's log, returning
// its global sequence number.
func (e *Emitter) Publish(raw []byte) int64 {
	return e.seq.publishEvent(raw)
}

// Sequencer is the single-writer admission authority: every command is
// admitted, matched to a registered handler by its wire message-type
// byte, and run to completion before the next command is admitted,
// producing a totally ordered event log. Admit itself is not
// goroutine-safe against concurrent callers and must be invoked from the
// event loop's single goroutine; cross-thread producers hop onto that
// goroutine through the scheduler's injection queue.
type Sequencer struct {
	handlers      map[byte]CommandHandler
	knownApps     map[byte]bool
	bootstrapType map[byte]bool
	appSeq        map[byte]int64
	eventSeq      int64
	replay        *Replay
	rejectBuilder RejectBuilder

	now           func() int64
	lastTimestamp int64

	mu sync.Mutex // guards registries only; Admit/publishEvent run single-threaded
}

// NewSequencer returns a Sequencer whose replay buffer retains the most
// recent replayDepth events for late-joining subscribers.
func NewSequencer(replayDepth int) *Sequencer {
	return &Sequencer{
		handlers:      map[byte]CommandHandler{},
		knownApps:     map[byte]bool{},
		bootstrapType: map[byte]bool{},
		appSeq:        map[byte]int64{},
		replay:        NewReplay(replayDepth),
		now:           func() int64 { return time.Now().UnixNano() },
	}
}

// RegisterApplication admits commands from applicationID. Commands from an
// unregistered application are rejected.
func (s *Sequencer) RegisterApplication(applicationID byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knownApps[applicationID] = true
}

// RegisterHandler associates commandType (the wire message-type byte of an
// inbound command) with h.
func (s *Sequencer) RegisterHandler(commandType byte, h CommandHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[commandType] = h
}

// AllowUnknownApplicationFor lets commandType through Admit even from an
// applicationID never passed to RegisterApplication — the one admission
// exception the clobschema example needs for an application's very first
// command, ApplicationDefinition, to reach its handler at all. On a
// successful Admit of commandType, the sending applicationID is registered
// automatically, so every later command from it is admitted normally.
func (s *Sequencer) AllowUnknownApplicationFor(commandType byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bootstrapType[commandType] = true
}

// SetRejectBuilder wires b as the encoder used to put a SequencerReject
// event on the bus for every admission-level failure Admit detects.
func (s *Sequencer) SetRejectBuilder(b RejectBuilder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectBuilder = b
}

// Admit implements pipeline.Sender. It validates the sending application is
// known (or that raw's message type is a registered bootstrap exception),
// checks raw's applicationSequenceNumber against the expected next value
// for applicationID, looks up a handler by raw's message-type byte, and
// runs it to completion. Every admission-level failure — out-of-sequence,
// no registered handler, or a handler error — is converted into a
// SequencerReject event carrying the original command bytes and a short
// reason, so a misbehaving publisher never aborts the bus.
func (s *Sequencer) Admit(applicationID byte, raw []byte) (int64, error) {
	if len(raw) < wire.HeaderFixedSize {
		s.reject(applicationID, 0, raw, "malformed")
		return 0, fmt.Errorf("%w: header truncated (%d bytes)", wire.ErrMalformed, len(raw))
	}

	buf := wire.NewBuffer(raw)
	msgType := buf.GetByte(wire.HeaderMessageTypeOffset)

	if !s.knownApps[applicationID] && !s.bootstrapType[msgType] {
		return 0, fmt.Errorf("%w: application %d", ErrUnknownApplication, applicationID)
	}

	actual := int64(buf.GetInt(wire.HeaderApplicationSeqNumOffset))
	expected := s.appSeq[applicationID] + 1
	if actual != expected {
		s.reject(applicationID, msgType, raw, "out-of-sequence")
		return 0, fmt.Errorf("%w: application %d sent %d, expected %d", ErrOutOfSequence, applicationID, actual, expected)
	}

	handler, ok := s.handlers[msgType]
	if !ok {
		s.reject(applicationID, msgType, raw, fmt.Sprintf("no handler for message type %d", msgType))
		return 0, fmt.Errorf("%w: no handler for message type %d", ErrRejected, msgType)
	}

	e := &Emitter{seq: s}
	if err := runHandler(handler, e, applicationID, raw); err != nil {
		reason := err.Error()
		if errors.Is(err, wire.ErrMalformed) {
			reason = "malformed"
		}
		s.reject(applicationID, msgType, raw, reason)
		return 0, fmt.Errorf("%w: %v", ErrRejected, err)
	}

	s.knownApps[applicationID] = true
	s.appSeq[applicationID] = actual
	return actual, nil
}

// runHandler invokes h, converting a decoder panic — a command with a
// valid header but a body shorter than its message type's fixed size —
// into an error, so one peer's malformed command becomes a
// SequencerReject instead of aborting the bus. Corruption on the event
// stream itself is still fatal; only the command admission path recovers.
func runHandler(h CommandHandler, e *Emitter, applicationID byte, raw []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", wire.ErrMalformed, r)
		}
	}()
	return h(e, applicationID, raw)
}

// reject puts a SequencerReject event on the bus if a RejectBuilder has
// been wired; otherwise the failure is only surfaced through Admit's
// returned error.
func (s *Sequencer) reject(applicationID byte, originalMessageType byte, originalCommand []byte, reason string) {
	if s.rejectBuilder == nil {
		return
	}
	raw := s.rejectBuilder(applicationID, originalMessageType, originalCommand, reason)
	s.publishEvent(raw)
}

// SetTimeSource replaces the event-timestamp source, letting tests drive
// stamping deterministically. The default reads time.Now().UnixNano().
func (s *Sequencer) SetTimeSource(now func() int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// publishEvent stamps raw's header timestamp with the sequencer's
// monotonic nanosecond time source, appends it to the event log with the
// next global sequence number, and retains it in the replay buffer. A
// raw shorter than a full header — only possible from a schema-less test
// handler — is published unstamped.
func (s *Sequencer) publishEvent(raw []byte) int64 {
	if len(raw) >= wire.HeaderFixedSize {
		ts := s.now()
		if ts < s.lastTimestamp {
			ts = s.lastTimestamp
		}
		s.lastTimestamp = ts
		wire.NewBuffer(raw).PutLong(wire.HeaderTimestampOffset, ts)
	}
	s.eventSeq++
	s.replay.Append(s.eventSeq, raw)
	return s.eventSeq
}

// Replay returns s's replay buffer, for wiring a subscriber's catch-up
// path.
func (s *Sequencer) Replay() *Replay { return s.replay }
