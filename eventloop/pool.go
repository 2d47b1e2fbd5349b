// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop

// Pool is a per-type LIFO object pool: elements are reset on return, the
// pool grows but never shrinks, and each pool is owned by exactly one
// subsystem. Unlike
// sync.Pool, items are never discarded by the garbage collector between
// Get calls, so a scheduler or matching engine can rely on a pooled object
// surviving until it is explicitly released.
type Pool[T any] struct {
	stack []*T
	new   func() *T
	reset func(*T)
}

// NewPool returns a Pool whose elements are created with newFn and reset
// with resetFn before each reuse.
func NewPool[T any](newFn func() *T, resetFn func(*T)) *Pool[T] {
	return &Pool[T]{new: newFn, reset: resetFn}
}

// Get pops the most recently released item, or allocates a new one if the
// pool is empty.
func (p *Pool[T]) Get() *T {
	if n := len(p.stack); n > 0 {
		v := p.stack[n-1]
		p.stack = p.stack[:n-1]
		return v
	}
	return p.new()
}

// Put resets v and pushes it back onto the pool for reuse.
func (p *Pool[T]) Put(v *T) {
	p.reset(v)
	p.stack = append(p.stack, v)
}

// Len reports how many items are currently available for Get without
// allocating.
func (p *Pool[T]) Len() int { return len(p.stack) }
