package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/pipeline"
	"github.com/solidcoredata/corebus/wire"
)

func rawEvent(msgType byte, timestamp int64) *wire.Buffer {
	buf := wire.NewBuffer(make([]byte, wire.HeaderFixedSize))
	buf.PutLong(wire.HeaderTimestampOffset, timestamp)
	buf.PutByte(wire.HeaderMessageTypeOffset, msgType)
	return buf
}

func TestDispatcherOrdersBeforePerTypeAfter(t *testing.T) {
	d := pipeline.NewDispatcher()
	var order []string
	d.OnBefore(func(ts int64, msgType byte, raw []byte) { order = append(order, "before1") })
	d.OnBefore(func(ts int64, msgType byte, raw []byte) { order = append(order, "before2") })
	d.On(7, func(ts int64, msgType byte, raw []byte) { order = append(order, "type7") })
	d.OnAfter(func(ts int64, msgType byte, raw []byte) { order = append(order, "after") })

	buf := rawEvent(7, 1234)
	require.NoError(t, d.Dispatch(buf, wire.HeaderFixedSize))
	require.Equal(t, []string{"before1", "before2", "type7", "after"}, order)
}

func TestDispatcherPassesHeaderTimestampAndType(t *testing.T) {
	d := pipeline.NewDispatcher()
	var gotTS int64
	var gotType byte
	d.On(9, func(ts int64, msgType byte, raw []byte) { gotTS, gotType = ts, msgType })

	buf := rawEvent(9, 555)
	require.NoError(t, d.Dispatch(buf, wire.HeaderFixedSize))
	require.Equal(t, int64(555), gotTS)
	require.Equal(t, byte(9), gotType)
}

func TestDispatcherIgnoresUnregisteredType(t *testing.T) {
	d := pipeline.NewDispatcher()
	var hooks int
	d.OnBefore(func(ts int64, msgType byte, raw []byte) { hooks++ })
	d.OnAfter(func(ts int64, msgType byte, raw []byte) { hooks++ })

	buf := rawEvent(0xFE, 1)
	require.NoError(t, d.Dispatch(buf, wire.HeaderFixedSize))
	require.Equal(t, 2, hooks)
}

func TestDispatcherListenerRegisteredMidDispatchObservesNextEventOnly(t *testing.T) {
	d := pipeline.NewDispatcher()
	var lateCalls int
	d.On(1, func(ts int64, msgType byte, raw []byte) {
		d.On(1, func(ts int64, msgType byte, raw []byte) { lateCalls++ })
	})

	buf := rawEvent(1, 1)
	require.NoError(t, d.Dispatch(buf, wire.HeaderFixedSize))
	require.Equal(t, 0, lateCalls)

	require.NoError(t, d.Dispatch(buf, wire.HeaderFixedSize))
	require.Equal(t, 1, lateCalls)
}

func TestDispatcherShortBufferIsMalformed(t *testing.T) {
	d := pipeline.NewDispatcher()
	buf := wire.NewBuffer(make([]byte, 4))
	err := d.Dispatch(buf, 4)
	require.ErrorIs(t, err, wire.ErrMalformed)
}
