// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/bus"
	"github.com/solidcoredata/corebus/clobschema"
	"github.com/solidcoredata/corebus/matching"
	"github.com/solidcoredata/corebus/pipeline"
	"github.com/solidcoredata/corebus/wire"
)

// harness wires a Sequencer and matching Engine together with one
// Provider per application id, mirroring how cmd/corebus wires them,
// scaled down for table-driven scenario tests.
type harness struct {
	t         *testing.T
	seq       *bus.Sequencer
	engine    *matching.Engine
	providers map[byte]*clobschema.Provider
}

func newHarness(t *testing.T) *harness {
	seq := bus.NewSequencer(64)
	engine := matching.NewEngine()
	engine.RegisterHandlers(seq)
	return &harness{t: t, seq: seq, engine: engine, providers: map[byte]*clobschema.Provider{}}
}

func (h *harness) provider(appID byte) *clobschema.Provider {
	p, ok := h.providers[appID]
	if !ok {
		pub := pipeline.NewBufferedPublisher(appID, h.seq)
		p = clobschema.NewProvider(pub)
		h.providers[appID] = p
	}
	return p
}

func (h *harness) defineApplication(appID byte, name string) {
	h.t.Helper()
	enc, err := h.provider(appID).NewApplicationDefinition()
	require.NoError(h.t, err)
	enc.SetApplicationId(uint16(appID))
	enc.SetName([]byte(name))
	require.NoError(h.t, h.provider(appID).SendApplicationDefinition(enc))
}

func (h *harness) defineEquity(appID byte, symbol string) int16 {
	h.t.Helper()
	enc, err := h.provider(appID).NewEquityDefinition()
	require.NoError(h.t, err)
	enc.SetApplicationId(uint16(appID))
	enc.SetSymbol([]byte(symbol))
	require.NoError(h.t, h.provider(appID).SendEquityDefinition(enc))

	id, ok := h.engine.InstrumentID(symbol)
	require.True(h.t, ok)
	return id
}

func (h *harness) addOrder(appID byte, side clobschema.Side, instrumentID int16, price, qty int32) error {
	h.t.Helper()
	enc, err := h.provider(appID).NewAddOrder()
	require.NoError(h.t, err)
	enc.SetApplicationId(uint16(appID))
	enc.SetSide(side)
	enc.SetInstrumentId(instrumentID)
	enc.SetPrice(price)
	enc.SetQty(qty)
	return h.provider(appID).SendAddOrder(enc)
}

func (h *harness) cancelOrder(appID byte, orderID int32) error {
	h.t.Helper()
	enc, err := h.provider(appID).NewCancelOrder()
	require.NoError(h.t, err)
	enc.SetApplicationId(uint16(appID))
	enc.SetOrderId(orderID)
	return h.provider(appID).SendCancelOrder(enc)
}

// eventsSince decodes every retained event after afterSeq by message type.
func (h *harness) eventsSince(afterSeq int64) []byte {
	h.t.Helper()
	events, complete := h.seq.Replay().Since(afterSeq)
	require.True(h.t, complete)
	var types []byte
	for _, raw := range events {
		types = append(types, raw[clobschema.MessageTypeOffset])
	}
	return types
}

func TestAddOrderRestsWhenBookEmpty(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 100, 10))

	book := h.engine.Book(instrumentID)
	bids := book.Bids()
	require.Len(t, bids, 1)
	require.Equal(t, int32(10), bids[0].Qty)
	require.Equal(t, int32(100), bids[0].Price)
	require.Empty(t, book.Asks())
}

func TestAddOrderCrossesAndFills(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	h.defineApplication(2, "LEHM01")
	instrumentID := h.defineEquity(1, "ACME")

	require.NoError(t, h.addOrder(1, clobschema.Side_SELL, instrumentID, 100, 5))
	priorEvents, _ := h.seq.Replay().Since(0)
	before := int64(len(priorEvents))

	require.NoError(t, h.addOrder(2, clobschema.Side_BUY, instrumentID, 100, 5))

	types := h.eventsSince(before)
	// AddOrder ack, then an aggressor/passive FillOrder pair.
	require.Equal(t, []byte{clobschema.AddOrderMessageType, clobschema.FillOrderMessageType, clobschema.FillOrderMessageType}, types)

	book := h.engine.Book(instrumentID)
	require.Empty(t, book.Bids())
	require.Empty(t, book.Asks())
}

func TestAddOrderSweepsMultipleRestingOrders(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	require.NoError(t, h.addOrder(1, clobschema.Side_SELL, instrumentID, 100, 5))
	require.NoError(t, h.addOrder(1, clobschema.Side_SELL, instrumentID, 101, 5))

	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 101, 8))

	book := h.engine.Book(instrumentID)
	asks := book.Asks()
	require.Len(t, asks, 1)
	require.Equal(t, int32(2), asks[0].Qty) // 5 + 5 - 8 remaining on the second level
	require.Equal(t, int32(101), asks[0].Price)
	require.Empty(t, book.Bids())
}

func TestAddOrderRejectsInvalidSide(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	enc, err := h.provider(1).NewAddOrder()
	require.NoError(t, err)
	enc.SetApplicationId(1)
	enc.SetInstrumentId(instrumentID)
	enc.SetPrice(100)
	enc.SetQty(1)
	buf := enc.Buffer()
	buf.PutByte(18, 0xFF) // invalid side, written directly since the encoder only accepts declared Side values
	mark := h.eventCount()
	require.NoError(t, h.provider(1).SendAddOrder(enc))

	events := h.rawEventsSince(mark)
	require.Len(t, events, 1)
	require.Equal(t, clobschema.RejectOrderMessageType, events[0][clobschema.MessageTypeOffset])

	dec := clobschema.NewRejectOrderDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "invalid side", string(reason))
}

func TestAddOrderRejectsInvalidQuantityAndPrice(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	mark := h.eventCount()
	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 100, 0))
	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 0, 1))

	events := h.rawEventsSince(mark)
	require.Len(t, events, 2)
	for _, raw := range events {
		require.Equal(t, clobschema.RejectOrderMessageType, raw[clobschema.MessageTypeOffset])
	}
}

func TestAddOrderRejectsUnknownInstrument(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")

	mark := h.eventCount()
	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, 999, 100, 1))

	events := h.rawEventsSince(mark)
	require.Len(t, events, 1)
	dec := clobschema.NewRejectOrderDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "invalid instrumentId", string(reason))
}

func TestCancelOrderRemovesRestingOrder(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 100, 10))
	book := h.engine.Book(instrumentID)
	orderID := book.Bids()[0].OrderID

	require.NoError(t, h.cancelOrder(1, orderID))
	require.Empty(t, book.Bids())
}

func TestCancelOrderRejectsUnknownOrder(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	h.defineEquity(1, "ACME")

	mark := h.eventCount()
	require.NoError(t, h.cancelOrder(1, 7))

	events := h.rawEventsSince(mark)
	require.Len(t, events, 1)
	require.Equal(t, clobschema.RejectCancelMessageType, events[0][clobschema.MessageTypeOffset])
	dec := clobschema.NewRejectCancelDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "unknown order", string(reason))
}

func TestCancelOrderRejectsAlreadyFilledOrder(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	require.NoError(t, h.addOrder(1, clobschema.Side_SELL, instrumentID, 100, 5))
	book := h.engine.Book(instrumentID)
	filledOrderID := book.Asks()[0].OrderID

	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 100, 5))
	require.Empty(t, book.Asks())

	require.NoError(t, h.cancelOrder(1, filledOrderID))
	events, _ := h.seq.Replay().Since(0)
	last := events[len(events)-1]
	require.Equal(t, clobschema.RejectCancelMessageType, last[clobschema.MessageTypeOffset])
	dec := clobschema.NewRejectCancelDecoder().Wrap(wire.NewBuffer(last), len(last))
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "too late to cancel", string(reason))
}

func TestHeartbeatEchoesThroughSequencer(t *testing.T) {
	seq := bus.NewSequencer(4)
	seq.RegisterApplication(1)
	seq.RegisterHandler(clobschema.HeartbeatMessageType, func(e *bus.Emitter, applicationID byte, raw []byte) error {
		e.Publish(raw)
		return nil
	})

	pub := pipeline.NewBufferedPublisher(1, seq)
	provider := clobschema.NewProvider(pub)
	enc, err := provider.NewHeartbeat()
	require.NoError(t, err)
	enc.SetApplicationId(1)
	enc.SetSeqNum(5)
	require.NoError(t, provider.SendHeartbeat(enc))

	events, complete := seq.Replay().Since(0)
	require.True(t, complete)
	require.Len(t, events, 1)
	dec := clobschema.NewHeartbeatDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	require.Equal(t, int32(5), dec.SeqNum())
}

func TestMalformedCommandBodyYieldsSequencerReject(t *testing.T) {
	h := newHarness(t)
	h.defineApplication(1, "REFDATA01")
	instrumentID := h.defineEquity(1, "ACME")

	// A full header but a body shorter than AddOrder's fixed size.
	mark := h.eventCount()
	raw := make([]byte, clobschema.HeaderFixedSize+2)
	raw[clobschema.MessageTypeOffset] = clobschema.AddOrderMessageType
	wire.NewBuffer(raw).PutInt(clobschema.ApplicationSeqNumOffset, 3)
	_, err := h.seq.Admit(1, raw)
	require.ErrorIs(t, err, bus.ErrRejected)

	events := h.rawEventsSince(mark)
	require.Len(t, events, 1)
	require.Equal(t, clobschema.SequencerRejectMessageType, events[0][clobschema.MessageTypeOffset])
	dec := clobschema.NewSequencerRejectDecoder().Wrap(wire.NewBuffer(events[0]), len(events[0]))
	require.Equal(t, clobschema.AddOrderMessageType, dec.OriginalMessageType())
	reason, ok := dec.Reason()
	require.True(t, ok)
	require.Equal(t, "malformed", string(reason))
	cmd, ok := dec.OriginalCommand()
	require.True(t, ok)
	require.Equal(t, raw, cmd)

	// The bus keeps running: the publisher's next command is admitted
	// under the sequence number the rejected one did not consume.
	require.NoError(t, h.addOrder(1, clobschema.Side_BUY, instrumentID, 100, 10))
}
