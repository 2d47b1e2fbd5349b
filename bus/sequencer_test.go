package bus_test

import (
	"testing"

	"github.com/solidcoredata/corebus/bus"
	"github.com/solidcoredata/corebus/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawCommand(msgType byte, appSeq int32) []byte {
	raw := make([]byte, wire.HeaderFixedSize)
	raw[wire.HeaderMessageTypeOffset] = msgType
	buf := wire.NewBuffer(raw)
	buf.PutInt(wire.HeaderApplicationSeqNumOffset, appSeq)
	return raw
}

func TestSequencerAdmitRejectsUnknownApplication(t *testing.T) {
	seq := bus.NewSequencer(4)
	_, err := seq.Admit(1, rawCommand(9, 1))
	require.ErrorIs(t, err, bus.ErrUnknownApplication)
}

func TestSequencerAdmitRejectsUnregisteredCommandType(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	_, err := seq.Admit(1, rawCommand(9, 1))
	require.ErrorIs(t, err, bus.ErrRejected)
}

func TestSequencerAdmitAcceptsSequentialApplicationSequenceNumbers(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		return nil
	})

	first, err := seq.Admit(1, rawCommand(9, 1))
	require.NoError(t, err)
	require.Equal(t, int64(1), first)

	second, err := seq.Admit(1, rawCommand(9, 2))
	require.NoError(t, err)
	require.Equal(t, int64(2), second)
}

func TestSequencerAdmitRejectsOutOfSequence(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		return nil
	})

	_, err := seq.Admit(1, rawCommand(9, 2))
	require.ErrorIs(t, err, bus.ErrOutOfSequence)
}

func TestSequencerAdmitRejectsWhenHandlerErrors(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		return assert.AnError
	})

	_, err := seq.Admit(1, rawCommand(9, 1))
	require.ErrorIs(t, err, bus.ErrRejected)
}

func TestSequencerHandlerPublishesEventsIntoReplay(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		e.Publish([]byte{0xAA})
		e.Publish([]byte{0xBB})
		return nil
	})

	_, err := seq.Admit(1, rawCommand(9, 1))
	require.NoError(t, err)

	events, complete := seq.Replay().Since(0)
	require.True(t, complete)
	require.Equal(t, [][]byte{{0xAA}, {0xBB}}, events)
}

func TestSequencerAdmitRejectBuilderPublishesSequencerReject(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)

	var gotApp byte
	var gotType byte
	var gotReason string
	seq.SetRejectBuilder(func(applicationID byte, originalMessageType byte, originalCommand []byte, reason string) []byte {
		gotApp, gotType, gotReason = applicationID, originalMessageType, reason
		return []byte{0xEE}
	})

	_, err := seq.Admit(1, rawCommand(9, 1))
	require.ErrorIs(t, err, bus.ErrRejected)
	require.Equal(t, byte(1), gotApp)
	require.Equal(t, byte(9), gotType)
	require.Equal(t, "no handler for message type 9", gotReason)

	events, complete := seq.Replay().Since(0)
	require.True(t, complete)
	require.Equal(t, [][]byte{{0xEE}}, events)
}

func TestSequencerStampsMonotonicTimestampIntoEvents(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		e.Publish(raw)
		return nil
	})

	times := []int64{500, 200} // second reading goes backwards
	seq.SetTimeSource(func() int64 {
		ts := times[0]
		times = times[1:]
		return ts
	})

	_, err := seq.Admit(1, rawCommand(9, 1))
	require.NoError(t, err)
	_, err = seq.Admit(1, rawCommand(9, 2))
	require.NoError(t, err)

	events, complete := seq.Replay().Since(0)
	require.True(t, complete)
	require.Len(t, events, 2)

	first := wire.NewBuffer(events[0]).GetLong(wire.HeaderTimestampOffset)
	second := wire.NewBuffer(events[1]).GetLong(wire.HeaderTimestampOffset)
	require.Equal(t, int64(500), first)
	require.Equal(t, int64(500), second) // clamped, never goes backwards
}

func TestSequencerAdmitRecoversPanickingHandler(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		panic("body shorter than fixed size")
	})

	var gotReason string
	seq.SetRejectBuilder(func(applicationID byte, originalMessageType byte, originalCommand []byte, reason string) []byte {
		gotReason = reason
		return []byte{0xEE}
	})

	_, err := seq.Admit(1, rawCommand(9, 1))
	require.ErrorIs(t, err, bus.ErrRejected)
	require.Equal(t, "malformed", gotReason)

	// The panic consumed neither the sequence number nor the bus: the
	// same command is admitted once the handler behaves.
	seq.RegisterHandler(9, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		return nil
	})
	_, err = seq.Admit(1, rawCommand(9, 1))
	require.NoError(t, err)
}
