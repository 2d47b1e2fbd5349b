// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the little-endian, zero-copy primitive codecs
// that every generated message encoder and decoder is built from.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Primitive byte widths, fixed by the schema.
const (
	SizeByte   = 1
	SizeChar   = 2
	SizeShort  = 2
	SizeInt    = 4
	SizeFloat  = 4
	SizeLong   = 8
	SizeDouble = 8
	SizeEnum   = 1
)

// Buffer is a mutable view into an externally owned byte slice. It owns no
// memory of its own: encoders and decoders re-wrap the same Buffer across
// many messages to stay allocation-free on the hot path.
type Buffer struct {
	data []byte
}

// NewBuffer wraps buf. The returned Buffer aliases buf; callers must not
// mutate buf through another reference while the Buffer is in use.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{data: buf}
}

// Wrap re-points b at buf, discarding any previous contents.
func (b *Buffer) Wrap(buf []byte) {
	b.data = buf
}

// Bytes returns the full backing slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes currently backing the buffer.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) checkRange(offset, size int) error {
	if offset < 0 || size < 0 || offset+size > len(b.data) {
		return fmt.Errorf("wire: out of range access at offset %d size %d (buffer len %d): %w", offset, size, len(b.data), ErrMalformed)
	}
	return nil
}

// GetByte reads a single byte at offset.
func (b *Buffer) GetByte(offset int) byte {
	return b.data[offset]
}

// PutByte writes a single byte at offset.
func (b *Buffer) PutByte(offset int, v byte) {
	b.data[offset] = v
}

// GetChar reads a 2-byte little-endian value at offset.
func (b *Buffer) GetChar(offset int) uint16 {
	return binary.LittleEndian.Uint16(b.data[offset:])
}

// PutChar writes a 2-byte little-endian value at offset.
func (b *Buffer) PutChar(offset int, v uint16) {
	binary.LittleEndian.PutUint16(b.data[offset:], v)
}

// GetShort reads a signed 16-bit little-endian value at offset.
func (b *Buffer) GetShort(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(b.data[offset:]))
}

// PutShort writes a signed 16-bit little-endian value at offset.
func (b *Buffer) PutShort(offset int, v int16) {
	binary.LittleEndian.PutUint16(b.data[offset:], uint16(v))
}

// GetInt reads a signed 32-bit little-endian value at offset.
func (b *Buffer) GetInt(offset int) int32 {
	return int32(binary.LittleEndian.Uint32(b.data[offset:]))
}

// PutInt writes a signed 32-bit little-endian value at offset.
func (b *Buffer) PutInt(offset int, v int32) {
	binary.LittleEndian.PutUint32(b.data[offset:], uint32(v))
}

// GetLong reads a signed 64-bit little-endian value at offset.
func (b *Buffer) GetLong(offset int) int64 {
	return int64(binary.LittleEndian.Uint64(b.data[offset:]))
}

// PutLong writes a signed 64-bit little-endian value at offset.
func (b *Buffer) PutLong(offset int, v int64) {
	binary.LittleEndian.PutUint64(b.data[offset:], uint64(v))
}

// GetFloat reads a 32-bit IEEE-754 little-endian value at offset.
func (b *Buffer) GetFloat(offset int) float32 {
	return float32fromBits(binary.LittleEndian.Uint32(b.data[offset:]))
}

// PutFloat writes a 32-bit IEEE-754 little-endian value at offset.
func (b *Buffer) PutFloat(offset int, v float32) {
	binary.LittleEndian.PutUint32(b.data[offset:], float32bits(v))
}

// GetDouble reads a 64-bit IEEE-754 little-endian value at offset.
func (b *Buffer) GetDouble(offset int) float64 {
	return float64fromBits(binary.LittleEndian.Uint64(b.data[offset:]))
}

// PutDouble writes a 64-bit IEEE-754 little-endian value at offset.
func (b *Buffer) PutDouble(offset int, v float64) {
	binary.LittleEndian.PutUint64(b.data[offset:], float64bits(v))
}

// GetBytes returns a slice aliasing length bytes starting at offset.
func (b *Buffer) GetBytes(offset, length int) []byte {
	return b.data[offset : offset+length]
}

// PutBytes copies value into the buffer starting at offset, growing the
// backing slice if needed.
func (b *Buffer) PutBytes(offset int, value []byte) {
	b.growTo(offset + len(value))
	copy(b.data[offset:offset+len(value)], value)
}

// growTo grows the backing slice so that Len() >= need, preserving existing
// contents: it reslices within the existing capacity and reallocates only
// beyond it.
func (b *Buffer) growTo(need int) {
	if need > cap(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	} else if need > len(b.data) {
		b.data = b.data[:need]
	}
}
