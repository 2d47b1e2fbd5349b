// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// Conventional header layout: applicationId, applicationSequenceNumber,
// timestamp, optionalFieldsIndex, schemaVersion, messageType, in this
// fixed offset/width arrangement, so schema-agnostic transport code (the
// publisher, the sequencer) can read and stamp header fields without
// importing a generated schema package. A generated package's own offset
// constants (e.g. MessageTypeOffset) are the source of truth for its
// message encoders/decoders; these exist for code that runs before a
// message's schema is known.
const (
	HeaderApplicationIDOffset       = 0  // char, 2 bytes
	HeaderApplicationSeqNumOffset   = 2  // int, 4 bytes
	HeaderTimestampOffset           = 6  // long, 8 bytes
	HeaderOptionalFieldsIndexOffset = 14 // char, 2 bytes
	HeaderSchemaVersionOffset       = 16 // byte, 1 byte
	HeaderMessageTypeOffset         = 17 // byte, 1 byte
	HeaderFixedSize                 = 18
)
