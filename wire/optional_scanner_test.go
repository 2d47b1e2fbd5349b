package wire_test

import (
	"testing"

	"github.com/solidcoredata/corebus/wire"
	"github.com/stretchr/testify/require"
)

func TestOptionalScannerFindCachesAcrossCalls(t *testing.T) {
	buf := wire.NewBuffer(make([]byte, 64))
	end := wire.PutTLV(buf, 0, 3, []byte{0xAA})
	end = wire.PutTLV(buf, end, 7, []byte{0xBB, 0xCC})

	var sc wire.OptionalScanner
	entry, ok, err := sc.Find(buf, 0, end, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte{0xBB, 0xCC}, buf.GetBytes(entry.ValueOffset, entry.ValueLen))

	// Corrupt the first entry's length byte after the scan has been cached:
	// a rescan would reinterpret it as a long-form marker and fail, so a
	// clean second Find proves the cache was reused, not recomputed.
	buf.PutByte(1, wire.LongFormMarker)
	_, ok, err = sc.Find(buf, 0, end, 3)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOptionalScannerFindMissingID(t *testing.T) {
	buf := wire.NewBuffer(make([]byte, 16))
	end := wire.PutTLV(buf, 0, 1, []byte{0x01})

	var sc wire.OptionalScanner
	_, ok, err := sc.Find(buf, 0, end, 99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOptionalScannerResetClearsCache(t *testing.T) {
	buf := wire.NewBuffer(make([]byte, 16))
	end := wire.PutTLV(buf, 0, 1, []byte{0x01})

	var sc wire.OptionalScanner
	_, ok, err := sc.Find(buf, 0, end, 1)
	require.NoError(t, err)
	require.True(t, ok)

	sc.Reset()
	buf2 := wire.NewBuffer(make([]byte, 16))
	end2 := wire.PutTLV(buf2, 0, 5, []byte{0x02})
	_, ok, err = sc.Find(buf2, 0, end2, 5)
	require.NoError(t, err)
	require.True(t, ok)
}
