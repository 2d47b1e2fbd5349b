// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "errors"

// ErrMalformed is returned for a buffer shorter than the fixed size it
// claims, or a truncated TLV.
var ErrMalformed = errors.New("wire: malformed buffer")

// ErrBadMessageName is returned when a schema facade is asked to create an
// encoder/decoder for a message name it does not recognize.
var ErrBadMessageName = errors.New("wire: bad message name")

