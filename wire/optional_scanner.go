// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// OptionalScanner caches the result of scanning a message's optional-field
// (TLV) region, so that a decoder touching several optional fields on the
// same wrapped message pays the ScanTLV cost once. It is a value type
// embedded directly in each generated decoder; Reset must be called every
// time the decoder is re-wrapped onto a different message.
type OptionalScanner struct {
	scanned bool
	entries []TLVEntry
	err     error
}

// Reset invalidates the cache. Call this from Wrap before the decoder is
// used against new bytes.
func (o *OptionalScanner) Reset() {
	o.scanned = false
	o.entries = nil
	o.err = nil
}

// Entries returns every TLV entry in [offset, end) of b, scanning once and
// reusing the cached result on subsequent calls against the same wrap.
func (o *OptionalScanner) Entries(b *Buffer, offset, end int) ([]TLVEntry, error) {
	if !o.scanned {
		o.entries, o.err = ScanTLV(b, offset, end)
		o.scanned = true
	}
	return o.entries, o.err
}

// Find returns the entry with the given id in [offset, end) of b, scanning
// (or reusing the cached scan) first.
func (o *OptionalScanner) Find(b *Buffer, offset, end int, id byte) (TLVEntry, bool, error) {
	entries, err := o.Entries(b, offset, end)
	if err != nil {
		return TLVEntry{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return TLVEntry{}, false, nil
}
