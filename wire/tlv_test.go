// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/wire"
)

func TestPutScanTLVShortForm(t *testing.T) {
	buf := wire.NewBuffer(make([]byte, 0, 64))
	end := wire.PutTLV(buf, 0, 7, []byte("abc"))

	entries, err := wire.ScanTLV(buf, 0, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, byte(7), entries[0].ID)
	require.Equal(t, 3, entries[0].ValueLen)
	require.True(t, bytes.Equal([]byte("abc"), buf.GetBytes(entries[0].ValueOffset, entries[0].ValueLen)))
}

func TestPutScanTLVLongForm(t *testing.T) {
	value := bytes.Repeat([]byte{0x42}, 300)
	buf := wire.NewBuffer(make([]byte, 0, 512))
	end := wire.PutTLV(buf, 0, 9, value)
	require.Equal(t, wire.LongFormMarker, int(buf.GetByte(1)))

	entries, err := wire.ScanTLV(buf, 0, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 300, entries[0].ValueLen)
	require.True(t, bytes.Equal(value, buf.GetBytes(entries[0].ValueOffset, entries[0].ValueLen)))
}

func TestScanTLVMultipleFieldsInOrder(t *testing.T) {
	buf := wire.NewBuffer(make([]byte, 0, 64))
	off := wire.PutTLV(buf, 0, 1, []byte("x"))
	off = wire.PutTLV(buf, off, 2, []byte("yy"))
	off = wire.PutTLV(buf, off, 3, []byte("zzz"))

	entries, err := wire.ScanTLV(buf, 0, off)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, []byte{1, 2, 3}, []byte{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestScanTLVTruncatedIsMalformed(t *testing.T) {
	buf := wire.NewBuffer([]byte{5}) // id with no length byte
	_, err := wire.ScanTLV(buf, 0, 1)
	require.ErrorIs(t, err, wire.ErrMalformed)
}
