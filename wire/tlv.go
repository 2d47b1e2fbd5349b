// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Optional fields are encoded as TLVs:
//
//	id:byte | length:byte-or-marker | value:bytes
//
// If the value length fits in 7 bits the length byte holds it directly.
// Otherwise the length byte is LongFormMarker and the next two bytes hold
// the real length, little-endian.
const (
	shortFormMaxLength = 127
	LongFormMarker     = 0xFF
)

// TLVHeaderSize returns the number of bytes the id+length prefix will
// occupy for a value of the given length, without writing anything. Callers
// use this to size an allocation up front before filling it in.
func TLVHeaderSize(valueLen int) int {
	if valueLen <= shortFormMaxLength {
		return 2 // id + short length
	}
	return 4 // id + 0xFF marker + 2-byte length
}

// PutTLV writes id, then the length header (short or long form), then
// value, starting at fieldOffset in b: fieldOffset is strictly "where in
// the message this field starts", never an offset into the caller's own
// source slice. Returns the offset of the first byte past the written
// TLV.
func PutTLV(b *Buffer, fieldOffset int, id byte, value []byte) int {
	valueLen := len(value)
	if valueLen <= shortFormMaxLength {
		b.growTo(fieldOffset + 2 + valueLen)
		b.PutByte(fieldOffset, id)
		b.PutByte(fieldOffset+1, byte(valueLen))
		b.PutBytes(fieldOffset+2, value)
		return fieldOffset + 2 + valueLen
	}
	b.growTo(fieldOffset + 4 + valueLen)
	b.PutByte(fieldOffset, id)
	b.PutByte(fieldOffset+1, LongFormMarker)
	b.PutChar(fieldOffset+2, uint16(valueLen))
	b.PutBytes(fieldOffset+4, value)
	return fieldOffset + 4 + valueLen
}

// TLVEntry describes one decoded optional field occurrence.
type TLVEntry struct {
	ID          byte
	ValueOffset int // offset of the first value byte within the message
	ValueLen    int
}

// ScanTLV walks the optional-field region [offset, end) of b and returns
// every TLV entry found, in wire order. It is the lazy-scan-once
// primitive a decoder's optional-field cache is built on.
func ScanTLV(b *Buffer, offset, end int) ([]TLVEntry, error) {
	var entries []TLVEntry
	pos := offset
	for pos < end {
		if pos+2 > end {
			return nil, fmt.Errorf("wire: truncated TLV id/length at offset %d: %w", pos, ErrMalformed)
		}
		id := b.GetByte(pos)
		lenByte := b.GetByte(pos + 1)
		var valueLen, headerLen int
		if lenByte == LongFormMarker {
			if pos+4 > end {
				return nil, fmt.Errorf("wire: truncated TLV long-form length at offset %d: %w", pos, ErrMalformed)
			}
			valueLen = int(b.GetChar(pos + 2))
			headerLen = 4
		} else {
			valueLen = int(lenByte)
			headerLen = 2
		}
		valueOffset := pos + headerLen
		if valueOffset+valueLen > end {
			return nil, fmt.Errorf("wire: truncated TLV value at offset %d: %w", pos, ErrMalformed)
		}
		entries = append(entries, TLVEntry{ID: id, ValueOffset: valueOffset, ValueLen: valueLen})
		pos = valueOffset + valueLen
	}
	return entries, nil
}
