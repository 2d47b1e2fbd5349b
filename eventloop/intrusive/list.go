// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intrusive implements a zero-allocation doubly-linked list whose
// links live in a single owning arena indexed by handles, with inline
// prev/next index fields instead of per-node pointers.
package intrusive

// Handle is an opaque reference to a node in a List. The zero Handle is
// Nil.
type Handle uint32

// Nil is the handle of no node.
const Nil Handle = 0

type node[T any] struct {
	value      T
	prev, next Handle
	inUse      bool
}

// List is an intrusive doubly-linked list over an arena of T. Unlike
// container/list, the arena is owned entirely by the List: removing a
// handle from one List and inserting it into another is not possible by
// construction (there is no shared node type to move), which sidesteps the
// corruption hazard of intrusive items shared across lists.
type List[T any] struct {
	arena      []node[T]
	free       []Handle
	head, tail Handle
	size       int
}

// New returns an empty list with capacity preallocated for n elements.
func New[T any](capacity int) *List[T] {
	return &List[T]{
		arena: make([]node[T], 1, capacity+1), // index 0 reserved for Nil
	}
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.size }

// Front returns the head handle, or Nil if the list is empty.
func (l *List[T]) Front() Handle { return l.head }

// Back returns the tail handle, or Nil if the list is empty.
func (l *List[T]) Back() Handle { return l.tail }

// Next returns the handle after h, or Nil at the end.
func (l *List[T]) Next(h Handle) Handle { return l.arena[h].next }

// Prev returns the handle before h, or Nil at the start.
func (l *List[T]) Prev(h Handle) Handle { return l.arena[h].prev }

// Value returns the value stored at h.
func (l *List[T]) Value(h Handle) *T { return &l.arena[h].value }

func (l *List[T]) alloc(v T) Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.arena[h] = node[T]{value: v, inUse: true}
		return h
	}
	l.arena = append(l.arena, node[T]{value: v, inUse: true})
	return Handle(len(l.arena) - 1)
}

// PushBack appends v and returns its handle.
func (l *List[T]) PushBack(v T) Handle {
	h := l.alloc(v)
	if l.tail == Nil {
		l.head, l.tail = h, h
	} else {
		l.arena[l.tail].next = h
		l.arena[h].prev = l.tail
		l.tail = h
	}
	l.size++
	return h
}

// InsertBefore inserts v immediately before at and returns the new handle.
// If at is Nil, v is appended.
func (l *List[T]) InsertBefore(at Handle, v T) Handle {
	if at == Nil {
		return l.PushBack(v)
	}
	h := l.alloc(v)
	prev := l.arena[at].prev
	l.arena[h].prev = prev
	l.arena[h].next = at
	l.arena[at].prev = h
	if prev == Nil {
		l.head = h
	} else {
		l.arena[prev].next = h
	}
	l.size++
	return h
}

// Remove unlinks h from the list and returns it to the free pool. It nulls
// h's links whether or not the caller later reuses the handle.
func (l *List[T]) Remove(h Handle) {
	n := &l.arena[h]
	if !n.inUse {
		return
	}
	if n.prev != Nil {
		l.arena[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != Nil {
		l.arena[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	var zero T
	n.value = zero
	n.prev, n.next = Nil, Nil
	n.inUse = false
	l.free = append(l.free, h)
	l.size--
}

// Each calls fn for every live element from Front to Back.
func (l *List[T]) Each(fn func(h Handle, v *T) bool) {
	for h := l.head; h != Nil; h = l.arena[h].next {
		if !fn(h, &l.arena[h].value) {
			return
		}
	}
}
