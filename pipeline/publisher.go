// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements the MessagePublisher contract: the
// per-application front door applications use to encode and admit
// messages into the bus, plus the retransmission bookkeeping a publisher
// needs to answer "is this still my most recent send" after a reconnect.
package pipeline

import (
	"fmt"

	"github.com/solidcoredata/corebus/wire"
)

// MaxMessageSize is the guaranteed minimum capacity of an acquired
// buffer: the MoldUDP64 payload size, so every pending message of a batch
// fits in one datagram.
const MaxMessageSize = 1450

// Publisher is the per-application front door for emitting messages into
// the bus. A schema's generated Provider wraps one of these per
// message type.
type Publisher interface {
	// Acquire returns a writable scratch buffer of at least size bytes,
	// reused across calls to stay allocation-free on the hot path.
	Acquire(size int) (*wire.Buffer, error)

	// Send admits buf[0:length), already encoded by a message-specific
	// encoder, into the sequencer's admission queue. The publisher
	// stamps applicationId and the next applicationSequenceNumber before
	// sending; timestamp is assigned by the
	// sequencer on admission, never by the publisher itself.
	Send(buf *wire.Buffer, length int) error

	// IsCurrent reports whether seq is the sequence number most recently
	// acknowledged for this publisher, letting a caller distinguish a
	// send still in flight from one already admitted.
	IsCurrent(seq int64) bool
}

// Sender is the narrow interface a Publisher admits encoded messages
// through — a bus client in production, a fake in tests.
type Sender interface {
	Admit(applicationID byte, raw []byte) (applicationSequenceNumber int64, err error)
}

// BufferedPublisher is the default Publisher: one reused scratch buffer
// per outstanding Acquire, admitted through a Sender.
type BufferedPublisher struct {
	applicationID byte
	sender        Sender

	scratch    *wire.Buffer
	nextAppSeq int64
	lastAcked  int64
	pendingErr error
}

// NewBufferedPublisher returns a Publisher that stamps applicationID on
// every message it sends and admits encoded bytes through sender.
func NewBufferedPublisher(applicationID byte, sender Sender) *BufferedPublisher {
	return &BufferedPublisher{
		applicationID: applicationID,
		sender:        sender,
		scratch:       wire.NewBuffer(make([]byte, MaxMessageSize)),
	}
}

// Acquire grows p's scratch buffer to size and returns it. Any error
// recorded by a prior failed Send is cleared: Acquire starts a fresh
// attempt.
func (p *BufferedPublisher) Acquire(size int) (*wire.Buffer, error) {
	p.pendingErr = nil
	if p.scratch.Len() < size {
		p.scratch.Wrap(make([]byte, size))
	}
	return p.scratch, nil
}

// Send stamps applicationID and the next applicationSequenceNumber into
// buf's header, monotonically increasing by 1 from 0, and admits
// buf[0:length) through the underlying Sender,
// recording the acknowledged sequence number on success. The sequencer
// only advances its own expected-next counter on acceptance, so a
// rejected Send gives its assigned sequence number back: the next Send
// is retried under the same number, keeping the publisher's counter in
// lockstep with the sequencer's regardless of rejections in between.
func (p *BufferedPublisher) Send(buf *wire.Buffer, length int) error {
	if buf != p.scratch {
		return fmt.Errorf("pipeline: Send called with a buffer not returned by Acquire")
	}
	p.nextAppSeq++
	buf.PutChar(wire.HeaderApplicationIDOffset, uint16(p.applicationID))
	buf.PutInt(wire.HeaderApplicationSeqNumOffset, int32(p.nextAppSeq))
	seq, err := p.sender.Admit(p.applicationID, buf.Bytes()[:length])
	if err != nil {
		p.nextAppSeq--
		p.pendingErr = err
		return fmt.Errorf("pipeline: admit rejected: %w", err)
	}
	p.lastAcked = seq
	return nil
}

// IsCurrent reports whether seq matches the most recently acknowledged
// applicationSequenceNumber.
func (p *BufferedPublisher) IsCurrent(seq int64) bool {
	return p.lastAcked == seq
}
