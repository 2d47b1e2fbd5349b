// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// Interest is a bitset of the readiness conditions a channel is
// registered for.
type Interest uint8

const (
	InterestRead Interest = 1 << iota
	InterestWrite
	InterestConnect
	InterestAccept
)

// Ready is the set of conditions observed on a channel when it becomes
// ready.
type Ready = Interest

// Listener is invoked when a registered channel becomes ready for one or
// more of its registered interests.
type Listener func(ready Ready)

// ErrIO wraps a socket error. The channel is closed and the event loop
// continues.
type ErrIO struct {
	Err error
}

func (e *ErrIO) Error() string { return fmt.Sprintf("eventloop: io error: %v", e.Err) }
func (e *ErrIO) Unwrap() error { return e.Err }

// Channel is anything a Selector can register: datagram, stream, and TLS
// stream sockets are all driven uniformly through this interface.
type Channel interface {
	// PollRead performs one non-blocking readiness check/attempt for the
	// registered read interest. Returning (false, nil) means "not ready
	// yet"; a non-nil error closes the channel.
	PollRead() (ready bool, err error)
	Close() error
}

type registration struct {
	ch       Channel
	interest Interest
	listener Listener
	closed   bool
}

// Selector multiplexes readiness across many registered channels without
// blocking the event loop thread on any single one of them. Rather than
// shelling out to OS-specific epoll/kqueue bindings (no such binding is
// present anywhere in the retrieved example pack, and Go's own netpoller
// already does this multiplexing underneath net.Conn), readiness is
// detected by polling each registered channel's non-blocking PollRead
// once per Select tick.
type Selector struct {
	mu   sync.Mutex
	regs map[int]*registration
	next int

	exit bool
}

// NewSelector returns an empty Selector.
func NewSelector() *Selector {
	return &Selector{regs: make(map[int]*registration)}
}

// RegistrationID identifies a registered channel for later Deregister
// calls.
type RegistrationID int

// Register adds ch to the selector with the given interest and listener.
func (s *Selector) Register(ch Channel, interest Interest, listener Listener) RegistrationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := s.next
	s.regs[id] = &registration{ch: ch, interest: interest, listener: listener}
	return RegistrationID(id)
}

// Deregister removes a prior registration. Idempotent.
func (s *Selector) Deregister(id RegistrationID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regs, int(id))
}

// Exit requests that a blocking Select return as soon as possible. Observed
// cooperatively before the next poll; there are no thread interrupts.
func (s *Selector) Exit() {
	s.mu.Lock()
	s.exit = true
	s.mu.Unlock()
}

// SelectNow performs exactly one non-blocking readiness pass over every
// registered channel and invokes ready listeners. Returns the number of
// channels that were ready.
func (s *Selector) SelectNow() int {
	s.mu.Lock()
	regs := make([]*registration, 0, len(s.regs))
	for _, r := range s.regs {
		regs = append(regs, r)
	}
	s.mu.Unlock()

	ready := 0
	for _, r := range regs {
		if r.closed {
			continue
		}
		ok, err := r.ch.PollRead()
		if err != nil {
			r.closed = true
			r.ch.Close()
			continue
		}
		if ok {
			ready++
			r.listener(InterestRead & r.interest)
		}
	}
	return ready
}

// Select blocks, polling at pollInterval, until at least one channel is
// ready or Exit has been called, then behaves like SelectNow.
func (s *Selector) Select() int {
	return s.selectFor(-1)
}

// SelectTimeout blocks for at most timeout before behaving like SelectNow,
// corresponding to the loop's "select(n)" branch for 1ms <= n < infinity.
func (s *Selector) SelectTimeout(timeout time.Duration) int {
	return s.selectFor(timeout)
}

const pollInterval = 200 * time.Microsecond

func (s *Selector) selectFor(timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		s.mu.Lock()
		exit := s.exit
		s.mu.Unlock()
		if exit {
			return 0
		}
		if n := s.SelectNow(); n > 0 {
			return n
		}
		if timeout >= 0 && time.Now().After(deadline) {
			return 0
		}
		time.Sleep(pollInterval)
	}
}

// netReadChannel adapts a net.Conn or net.PacketConn into a Channel using a
// short read-deadline as the non-blocking probe, the idiom Go's standard
// library recommends in place of a raw O_NONBLOCK fcntl.
type netReadChannel struct {
	conn    net.Conn
	onReady func() (bool, error)
}

// NewStreamChannel wraps a TCP (or TLS, since *tls.Conn implements
// net.Conn) stream connection. onData is called once per readable byte
// window and should read and process exactly what is available.
func NewStreamChannel(conn net.Conn, onData func(conn net.Conn) (bool, error)) Channel {
	return &netReadChannel{conn: conn, onReady: func() (bool, error) { return onData(conn) }}
}

func (c *netReadChannel) PollRead() (bool, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false, err
	}
	ready, err := c.onReady()
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return false, nil
		}
		return false, &ErrIO{Err: err}
	}
	return ready, nil
}

func (c *netReadChannel) Close() error { return c.conn.Close() }

// NewDatagramChannel wraps a UDP packet connection the same way.
func NewDatagramChannel(conn net.PacketConn, onPacket func(net.PacketConn) (bool, error)) Channel {
	return &packetChannel{conn: conn, onReady: onPacket}
}

type packetChannel struct {
	conn    net.PacketConn
	onReady func(net.PacketConn) (bool, error)
}

func (c *packetChannel) PollRead() (bool, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false, err
	}
	ready, err := c.onReady(c.conn)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return false, nil
		}
		return false, &ErrIO{Err: err}
	}
	return ready, nil
}

func (c *packetChannel) Close() error { return c.conn.Close() }
