// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matching implements the CLOB example: a per-instrument
// price-time-priority order book and the addOrder/cancelOrder command
// handlers that run against it.
package matching

import (
	"github.com/solidcoredata/corebus/clobschema"
	"github.com/solidcoredata/corebus/eventloop/intrusive"
)

// Order is one resting order, keyed in a Book's bid or ask list by
// (priority_price, arrivalSeq): priority_price = price for asks,
// -price for bids (bidLess/askLess implement the comparator directly on
// signed price rather than materializing a separate priority field).
type Order struct {
	OrderID       int32
	ApplicationID byte
	InstrumentID  int16
	Side          clobschema.Side
	Price         int32
	Qty           int32 // remaining quantity
	ArrivalSeq    int64
}

// Book holds the two price-time-priority sides of one instrument, each an
// intrusive doubly-linked list ordered ascending by priority so the head
// is always the best resting order.
type Book struct {
	InstrumentID int16
	bids         *intrusive.List[Order]
	asks         *intrusive.List[Order]
}

// NewBook returns an empty book for instrumentID.
func NewBook(instrumentID int16) *Book {
	return &Book{
		InstrumentID: instrumentID,
		bids:         intrusive.New[Order](16),
		asks:         intrusive.New[Order](16),
	}
}

func bidLess(a, b Order) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	return a.ArrivalSeq < b.ArrivalSeq
}

func askLess(a, b Order) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.ArrivalSeq < b.ArrivalSeq
}

func (b *Book) listFor(side clobschema.Side) *intrusive.List[Order] {
	if side == clobschema.Side_BUY {
		return b.bids
	}
	return b.asks
}

func lessFor(side clobschema.Side) func(a, b Order) bool {
	if side == clobschema.Side_BUY {
		return bidLess
	}
	return askLess
}

// Insert places o into its side's book in price-time-priority order and
// returns its handle. Orders at the same price are appended after
// existing ones at that price, preserving arrival-ordered FIFO within a
// price level.
func (b *Book) Insert(o Order) intrusive.Handle {
	list := b.listFor(o.Side)
	less := lessFor(o.Side)
	for h := list.Front(); h != intrusive.Nil; h = list.Next(h) {
		if less(o, *list.Value(h)) {
			return list.InsertBefore(h, o)
		}
	}
	return list.PushBack(o)
}

// Remove unlinks the order at h from side's list.
func (b *Book) Remove(side clobschema.Side, h intrusive.Handle) {
	b.listFor(side).Remove(h)
}

// BestOpposite returns the best resting order on the side opposite side —
// the book an aggressing order of this side matches against — and a
// direct pointer into its arena slot so callers can decrement its
// remaining quantity in place.
func (b *Book) BestOpposite(side clobschema.Side) (intrusive.Handle, *Order, bool) {
	list := b.OppositeList(side)
	h := list.Front()
	if h == intrusive.Nil {
		return intrusive.Nil, nil, false
	}
	return h, list.Value(h), true
}

// OppositeList returns the list an order of side matches against: asks
// for an aggressing buy, bids for an aggressing sell.
func (b *Book) OppositeList(side clobschema.Side) *intrusive.List[Order] {
	if side == clobschema.Side_BUY {
		return b.asks
	}
	return b.bids
}

// Bids returns every resting bid, best first.
func (b *Book) Bids() []Order { return collect(b.bids) }

// Asks returns every resting ask, best first.
func (b *Book) Asks() []Order { return collect(b.asks) }

func collect(l *intrusive.List[Order]) []Order {
	out := make([]Order, 0, l.Len())
	l.Each(func(_ intrusive.Handle, v *Order) bool {
		out = append(out, *v)
		return true
	})
	return out
}
