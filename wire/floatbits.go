// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "math"

func float32bits(v float32) uint32     { return math.Float32bits(v) }
func float32fromBits(v uint32) float32 { return math.Float32frombits(v) }
func float64bits(v float64) uint64     { return math.Float64bits(v) }
func float64fromBits(v uint64) float64 { return math.Float64frombits(v) }
