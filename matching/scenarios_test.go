// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/clobschema"
	"github.com/solidcoredata/corebus/matching"
	"github.com/solidcoredata/corebus/wire"
)

// restingOrder is the (orderId, price, qty) triple scenario assertions
// compare book contents against.
type restingOrder struct {
	orderID int32
	price   int32
	qty     int32
}

func resting(orders []matching.Order) []restingOrder {
	out := make([]restingOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, restingOrder{orderID: o.OrderID, price: o.Price, qty: o.Qty})
	}
	return out
}

type fill struct {
	agg   int32
	pass  int32
	price int32
	qty   int32
	side  clobschema.Side
}

func decodeFill(t *testing.T, raw []byte) fill {
	t.Helper()
	dec := clobschema.NewFillOrderDecoder().Wrap(wire.NewBuffer(raw), len(raw))
	return fill{
		agg:   dec.AggressorOrderId(),
		pass:  dec.PassiveOrderId(),
		price: dec.Price(),
		qty:   dec.Qty(),
		side:  dec.Side(),
	}
}

// bootstrap defines applications REFDATA01, LEHM01, BEAR01 and equities
// AAPL, GOOG, then has BEAR01 post four resting asks on AAPL.
const (
	appREFDATA byte = 1
	appLEHM    byte = 2
	appBEAR    byte = 3
)

func bootstrap(t *testing.T, h *harness) (aapl, goog int16) {
	t.Helper()
	h.defineApplication(appREFDATA, "REFDATA01")
	h.defineApplication(appLEHM, "LEHM01")
	h.defineApplication(appBEAR, "BEAR01")
	aapl = h.defineEquity(appREFDATA, "AAPL")
	goog = h.defineEquity(appREFDATA, "GOOG")

	require.NoError(t, h.addOrder(appBEAR, clobschema.Side_SELL, aapl, 100, 100)) // id 1
	require.NoError(t, h.addOrder(appBEAR, clobschema.Side_SELL, aapl, 99, 200))  // id 2
	require.NoError(t, h.addOrder(appBEAR, clobschema.Side_SELL, aapl, 101, 300)) // id 3
	require.NoError(t, h.addOrder(appBEAR, clobschema.Side_SELL, aapl, 99, 400))  // id 4
	return aapl, goog
}

func (h *harness) eventCount() int64 {
	events, complete := h.seq.Replay().Since(0)
	require.True(h.t, complete)
	return int64(len(events))
}

func (h *harness) rawEventsSince(afterSeq int64) [][]byte {
	events, complete := h.seq.Replay().Since(afterSeq)
	require.True(h.t, complete)
	return events
}

func TestScenarioAddCrossBuy(t *testing.T) {
	h := newHarness(t)
	aapl, _ := bootstrap(t, h)
	mark := h.eventCount()

	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 99, 100))

	events := h.rawEventsSince(mark)
	require.Len(t, events, 3)

	addDec := clobschema.NewAddOrderDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	require.Equal(t, clobschema.AddOrderMessageType, byte(events[0][clobschema.MessageTypeOffset]))
	require.Equal(t, int32(5), addDec.OrderId())

	aggFill := decodeFill(t, events[1])
	passFill := decodeFill(t, events[2])
	require.Equal(t, fill{agg: 5, pass: 2, price: 99, qty: 100, side: clobschema.Side_BUY}, aggFill)
	require.Equal(t, fill{agg: 5, pass: 2, price: 99, qty: 100, side: clobschema.Side_SELL}, passFill)

	book := h.engine.Book(aapl)
	require.Equal(t, []restingOrder{
		{orderID: 2, price: 99, qty: 100},
		{orderID: 4, price: 99, qty: 400},
		{orderID: 1, price: 100, qty: 100},
		{orderID: 3, price: 101, qty: 300},
	}, resting(book.Asks()))
	require.Empty(t, book.Bids())
}

func TestScenarioSweep(t *testing.T) {
	h := newHarness(t)
	aapl, _ := bootstrap(t, h)
	mark := h.eventCount()

	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 102, 1500))

	events := h.rawEventsSince(mark)
	// AddOrder ack plus an aggressor/passive pair per swept resting order.
	require.Len(t, events, 9)

	wantFills := []fill{
		{agg: 5, pass: 2, price: 99, qty: 200},
		{agg: 5, pass: 4, price: 99, qty: 400},
		{agg: 5, pass: 1, price: 100, qty: 100},
		{agg: 5, pass: 3, price: 101, qty: 300},
	}
	for i, want := range wantFills {
		aggFill := decodeFill(t, events[1+2*i])
		passFill := decodeFill(t, events[2+2*i])
		want.side = clobschema.Side_BUY
		require.Equal(t, want, aggFill, "aggressor fill %d", i)
		want.side = clobschema.Side_SELL
		require.Equal(t, want, passFill, "passive fill %d", i)
	}

	book := h.engine.Book(aapl)
	require.Empty(t, book.Asks())
	require.Equal(t, []restingOrder{{orderID: 5, price: 102, qty: 500}}, resting(book.Bids()))
}

func TestScenarioRejectReasons(t *testing.T) {
	h := newHarness(t)
	aapl, goog := bootstrap(t, h)

	// side=0 needs the side byte written raw: the typed encoder only
	// accepts declared Side values.
	sendInvalidSide := func() {
		enc, err := h.provider(appLEHM).NewAddOrder()
		require.NoError(t, err)
		enc.SetApplicationId(uint16(appLEHM))
		enc.SetInstrumentId(goog)
		enc.SetPrice(100)
		enc.SetQty(100)
		enc.Buffer().PutByte(18, 0)
		require.NoError(t, h.provider(appLEHM).SendAddOrder(enc))
	}

	cases := []struct {
		name   string
		send   func()
		reason string
	}{
		{"zero qty", func() { require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 100, 0)) }, "invalid qty"},
		{"zero price", func() { require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 0, 100)) }, "invalid price"},
		{"negative price", func() { require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, -100, 100)) }, "invalid price"},
		{"undefined instrument", func() { require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, 99, 100, 100)) }, "invalid instrumentId"},
		{"zero side", sendInvalidSide, "invalid side"},
	}

	for _, tc := range cases {
		mark := h.eventCount()
		tc.send()
		events := h.rawEventsSince(mark)
		require.Len(t, events, 1, tc.name)
		require.Equal(t, clobschema.RejectOrderMessageType, events[0][clobschema.MessageTypeOffset], tc.name)
		dec := clobschema.NewRejectOrderDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
		reason, ok := dec.Reason()
		require.True(t, ok, tc.name)
		require.Equal(t, tc.reason, string(reason), tc.name)
	}
}

func TestScenarioCancel(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(appREFDATA, "REFDATA01")
	h.defineApplication(appLEHM, "LEHM01")
	aapl := h.defineEquity(appREFDATA, "AAPL")

	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_SELL, aapl, 101, 10)) // id 1
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_SELL, aapl, 102, 10)) // id 2
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_SELL, aapl, 103, 10)) // id 3
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 97, 10))   // id 4
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 98, 10))   // id 5
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 96, 10))   // id 6

	// Cancel the middle bid.
	mark := h.eventCount()
	require.NoError(t, h.cancelOrder(appLEHM, 4))
	events := h.rawEventsSince(mark)
	require.Len(t, events, 1)
	require.Equal(t, clobschema.CancelOrderMessageType, events[0][clobschema.MessageTypeOffset])

	book := h.engine.Book(aapl)
	require.Equal(t, []restingOrder{
		{orderID: 5, price: 98, qty: 10},
		{orderID: 6, price: 96, qty: 10},
	}, resting(book.Bids()))

	// Cancel an order id never issued.
	mark = h.eventCount()
	require.NoError(t, h.cancelOrder(appLEHM, 7))
	events = h.rawEventsSince(mark)
	require.Len(t, events, 1)
	dec := clobschema.NewRejectCancelDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	require.Equal(t, int32(7), dec.OrderId())
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "unknown order", string(reason))

	// Fill ask id 1 completely, then try to cancel it.
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 101, 10)) // id 7, fills id 1
	mark = h.eventCount()
	require.NoError(t, h.cancelOrder(appLEHM, 1))
	events = h.rawEventsSince(mark)
	require.Len(t, events, 1)
	dec = clobschema.NewRejectCancelDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	require.Equal(t, int32(1), dec.OrderId())
	reason, ok = dec.Reason()
	require.True(t, ok)
	require.Equal(t, "too late to cancel", string(reason))
}

// Bid and ask lists stay sorted by their priority key after every command
// the scenarios issue.
func TestScenarioBooksStaySortedByPriority(t *testing.T) {
	h := newHarness(t)
	aapl, _ := bootstrap(t, h)

	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 98, 50))
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 97, 50))
	require.NoError(t, h.addOrder(appLEHM, clobschema.Side_BUY, aapl, 98, 60))

	book := h.engine.Book(aapl)
	bids := book.Bids()
	for i := 1; i < len(bids); i++ {
		prev, cur := bids[i-1], bids[i]
		require.True(t, prev.Price > cur.Price ||
			(prev.Price == cur.Price && prev.ArrivalSeq < cur.ArrivalSeq),
			"bids out of priority order at %d", i)
	}
	asks := book.Asks()
	for i := 1; i < len(asks); i++ {
		prev, cur := asks[i-1], asks[i]
		require.True(t, prev.Price < cur.Price ||
			(prev.Price == cur.Price && prev.ArrivalSeq < cur.ArrivalSeq),
			"asks out of priority order at %d", i)
	}
}
