// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"errors"
	"fmt"

	"github.com/solidcoredata/corebus/wire"
)

// ErrGapDetected is returned by Resync when the replay buffer no longer
// holds every event since the client's last-seen sequence number — the
// client has fallen too far behind and needs an out-of-band resynchronize
// (snapshot transfer), which this module does not implement: nothing is
// retained beyond the event log itself.
var ErrGapDetected = errors.New("bus: replay gap detected, resync required")

// Transport is the narrow surface a Client needs from whatever carries
// commands to the sequencer and events back: send one command, fetch
// events since a sequence number. A LocalTransport wires this directly to
// an in-process Sequencer; a networked implementation would satisfy the
// same interface over a wire connection.
type Transport interface {
	SendCommand(applicationID byte, raw []byte) (int64, error)
	FetchEvents(afterSeq int64) (events [][]byte, complete bool, err error)
}

// LocalTransport wires a Client directly to an in-process Sequencer.
// Transport is the seam a real network binding would implement later.
type LocalTransport struct {
	seq *Sequencer
}

// NewLocalTransport returns a Transport backed by seq.
func NewLocalTransport(seq *Sequencer) *LocalTransport {
	return &LocalTransport{seq: seq}
}

func (t *LocalTransport) SendCommand(applicationID byte, raw []byte) (int64, error) {
	return t.seq.Admit(applicationID, raw)
}

func (t *LocalTransport) FetchEvents(afterSeq int64) ([][]byte, bool, error) {
	events, complete := t.seq.Replay().Since(afterSeq)
	return events, complete, nil
}

// Dispatcher is satisfied by a schema's generated Dispatcher.
type Dispatcher interface {
	Dispatch(buf *wire.Buffer, length int) error
}

// Client is a bus session: it carries an opaque client-chosen identity
// across reconnects, admits commands through a Transport, and
// periodically resynchronizes from the replay buffer into a Dispatcher.
type Client struct {
	id         string
	transport  Transport
	dispatcher Dispatcher
	lastSeen   int64
	buf        *wire.Buffer
}

// NewClient returns a Client identified by id, admitting commands through
// transport and delivering fetched events to dispatcher.
func NewClient(id string, transport Transport, dispatcher Dispatcher) *Client {
	return &Client{
		id:         id,
		transport:  transport,
		dispatcher: dispatcher,
		buf:        wire.NewBuffer(make([]byte, 256)),
	}
}

// ID returns the client's session identity.
func (c *Client) ID() string { return c.id }

// Admit implements pipeline.Sender by forwarding to the client's
// Transport.
func (c *Client) Admit(applicationID byte, raw []byte) (int64, error) {
	return c.transport.SendCommand(applicationID, raw)
}

// Resync fetches every event since the client's last-seen sequence number
// and dispatches them in order, advancing lastSeen as it goes. A
// heartbeat-driven scheduler task is expected to call this
// periodically; Resync is not goroutine-safe against concurrent callers.
func (c *Client) Resync() error {
	events, complete, err := c.transport.FetchEvents(c.lastSeen)
	if err != nil {
		return fmt.Errorf("bus: fetching events for client %q: %w", c.id, err)
	}
	if !complete {
		return fmt.Errorf("%w: client %q last saw %d", ErrGapDetected, c.id, c.lastSeen)
	}
	for _, raw := range events {
		if c.buf.Len() < len(raw) {
			c.buf.Wrap(make([]byte, len(raw)))
		} else {
			c.buf.Wrap(c.buf.Bytes()[:len(raw)])
		}
		copy(c.buf.Bytes(), raw)
		if err := c.dispatcher.Dispatch(c.buf, len(raw)); err != nil {
			return fmt.Errorf("bus: dispatching event for client %q: %w", c.id, err)
		}
		c.lastSeen++
	}
	return nil
}
