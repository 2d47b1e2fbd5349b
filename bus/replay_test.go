package bus_test

import (
	"testing"

	"github.com/solidcoredata/corebus/bus"
	"github.com/stretchr/testify/require"
)

func TestReplaySinceReturnsEventsAfterGivenSeq(t *testing.T) {
	r := bus.NewReplay(8)
	r.Append(1, []byte("a"))
	r.Append(2, []byte("b"))
	r.Append(3, []byte("c"))

	events, complete := r.Since(1)
	require.True(t, complete)
	require.Equal(t, [][]byte{[]byte("b"), []byte("c")}, events)
}

func TestReplaySinceReportsIncompleteWhenEvicted(t *testing.T) {
	r := bus.NewReplay(2)
	r.Append(1, []byte("a"))
	r.Append(2, []byte("b"))
	r.Append(3, []byte("c")) // evicts seq 1

	_, complete := r.Since(0)
	require.False(t, complete)
}

func TestReplaySinceEmptyBufferIsComplete(t *testing.T) {
	r := bus.NewReplay(4)
	events, complete := r.Since(0)
	require.Nil(t, events)
	require.True(t, complete)
}
