// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matching

import (
	"github.com/solidcoredata/corebus/bus"
	"github.com/solidcoredata/corebus/clobschema"
	"github.com/solidcoredata/corebus/eventloop/intrusive"
	"github.com/solidcoredata/corebus/wire"
)

type orderStatus byte

const (
	statusResting orderStatus = iota
	statusFilled
	statusCancelled
)

// orderRecord tracks an order's life past its time in the book, so a
// later cancel of a filled or already-cancelled id can be told apart from
// one that was never issued.
type orderRecord struct {
	instrumentID int16
	side         clobschema.Side
	handle       intrusive.Handle
	status       orderStatus
}

// Engine is a per-instrument central-limit-order-book matching engine:
// two price-time-priority books per instrument plus the addOrder,
// cancelOrder, equityDefinition, and applicationDefinition command
// handlers the sequencer dispatches to.
type Engine struct {
	books              map[int16]*Book
	symbolToInstrument map[string]int16
	applicationNames   map[byte]string
	orders             map[int32]*orderRecord
	nextOrderID        int32
	nextInstrumentID   int16
	arrivalSeq         int64

	scratch *wire.Buffer

	addOrderDec     *clobschema.AddOrderDecoder
	cancelOrderDec  *clobschema.CancelOrderDecoder
	equityDefDec    *clobschema.EquityDefinitionDecoder
	appDefDec       *clobschema.ApplicationDefinitionDecoder
	fillEnc         *clobschema.FillOrderEncoder
	cancelOrderEnc  *clobschema.CancelOrderEncoder
	rejectOrderEnc  *clobschema.RejectOrderEncoder
	rejectCancelEnc *clobschema.RejectCancelEncoder
	sequencerRejEnc *clobschema.SequencerRejectEncoder
}

// NewEngine returns an Engine with no instruments defined yet.
func NewEngine() *Engine {
	return &Engine{
		books:              map[int16]*Book{},
		symbolToInstrument: map[string]int16{},
		applicationNames:   map[byte]string{},
		orders:             map[int32]*orderRecord{},
		scratch:            wire.NewBuffer(make([]byte, 256)),

		addOrderDec:     clobschema.NewAddOrderDecoder(),
		cancelOrderDec:  clobschema.NewCancelOrderDecoder(),
		equityDefDec:    clobschema.NewEquityDefinitionDecoder(),
		appDefDec:       clobschema.NewApplicationDefinitionDecoder(),
		fillEnc:         clobschema.NewFillOrderEncoder(),
		cancelOrderEnc:  clobschema.NewCancelOrderEncoder(),
		rejectOrderEnc:  clobschema.NewRejectOrderEncoder(),
		rejectCancelEnc: clobschema.NewRejectCancelEncoder(),
		sequencerRejEnc: clobschema.NewSequencerRejectEncoder(),
	}
}

// RegisterHandlers wires every command this engine understands into seq,
// including the ApplicationDefinition bootstrap exception every
// application's first command relies on.
func (eng *Engine) RegisterHandlers(seq *bus.Sequencer) {
	seq.AllowUnknownApplicationFor(clobschema.ApplicationDefinitionMessageType)
	seq.RegisterHandler(clobschema.ApplicationDefinitionMessageType, eng.handleApplicationDefinition)
	seq.RegisterHandler(clobschema.EquityDefinitionMessageType, eng.handleEquityDefinition)
	seq.RegisterHandler(clobschema.AddOrderMessageType, eng.handleAddOrder)
	seq.RegisterHandler(clobschema.CancelOrderMessageType, eng.handleCancelOrder)
	seq.SetRejectBuilder(eng.buildSequencerReject)
}

// buildSequencerReject encodes a SequencerReject event for an
// admission-level failure the sequencer itself detected (out-of-sequence,
// no registered handler, or a handler error). It is wired as the
// sequencer's bus.RejectBuilder so the schema-agnostic bus package never
// needs to know SequencerReject's concrete wire shape.
func (eng *Engine) buildSequencerReject(applicationID byte, originalMessageType byte, originalCommand []byte, reason string) []byte {
	renc := eng.sequencerRejEnc.Wrap(eng.scratch)
	renc.SetApplicationId(uint16(applicationID))
	renc.SetOriginalMessageType(originalMessageType)
	renc.SetReason([]byte(reason))
	renc.SetOriginalCommand(originalCommand)
	n := renc.Commit()
	return append([]byte(nil), renc.Buffer().Bytes()[:n]...)
}

// Book returns the order book for instrumentID, or nil if undefined.
func (eng *Engine) Book(instrumentID int16) *Book { return eng.books[instrumentID] }

// InstrumentID returns the instrument id assigned to symbol, if any.
func (eng *Engine) InstrumentID(symbol string) (int16, bool) {
	id, ok := eng.symbolToInstrument[symbol]
	return id, ok
}

func oppositeSide(s clobschema.Side) clobschema.Side {
	if s == clobschema.Side_BUY {
		return clobschema.Side_SELL
	}
	return clobschema.Side_BUY
}

// handleApplicationDefinition records the sending application's declared
// name and republishes the command unchanged as the corresponding event.
// It is registered as a bootstrap exception, so it is the only command an
// unregistered application may ever send.
func (eng *Engine) handleApplicationDefinition(e *bus.Emitter, applicationID byte, raw []byte) error {
	buf := wire.NewBuffer(raw)
	dec := eng.appDefDec.Wrap(buf, len(raw))
	if name, ok := dec.Name(); ok {
		eng.applicationNames[applicationID] = string(name)
	}
	e.Publish(raw)
	return nil
}

// handleEquityDefinition assigns the next instrument id, opens an empty
// book for it, and republishes the command with instrumentId filled in as
// the EquityDefinition event.
func (eng *Engine) handleEquityDefinition(e *bus.Emitter, applicationID byte, raw []byte) error {
	buf := wire.NewBuffer(raw)
	dec := eng.equityDefDec.Wrap(buf, len(raw))

	instrumentID := eng.nextInstrumentID
	eng.nextInstrumentID++
	eng.books[instrumentID] = NewBook(instrumentID)
	if symbol, ok := dec.Symbol(); ok {
		eng.symbolToInstrument[string(symbol)] = instrumentID
	}

	clobschema.SetEquityDefinitionInstrumentIdOnWire(buf, instrumentID)
	e.Publish(raw)
	return nil
}

// handleAddOrder validates an inbound addOrder command, rejecting it with a
// RejectOrder event when any field fails validation, otherwise
// assigns it an orderId, republishes it as the AddOrder acknowledgement
// event, then runs the price-time-priority matching cascade, emitting an
// alternating aggressor/passive FillOrder pair for each cross and resting
// any unfilled remainder.
func (eng *Engine) handleAddOrder(e *bus.Emitter, applicationID byte, raw []byte) error {
	buf := wire.NewBuffer(raw)
	dec := eng.addOrderDec.Wrap(buf, len(raw))

	sideByte := dec.SideByte()
	side, sideOK := clobschema.ValueOfSide(sideByte)
	qty := dec.Qty()
	instrumentID := dec.InstrumentId()
	price := dec.Price()
	appID := dec.ApplicationId()

	reject := func(reason string) error {
		renc := eng.rejectOrderEnc.Wrap(eng.scratch)
		renc.SetApplicationId(appID)
		renc.SetSide(side)
		renc.SetQty(qty)
		renc.SetInstrumentId(instrumentID)
		renc.SetPrice(price)
		renc.SetReason([]byte(reason))
		n := renc.Commit()
		e.Publish(append([]byte(nil), renc.Buffer().Bytes()[:n]...))
		return nil
	}

	switch {
	case !sideOK:
		return reject("invalid side")
	case qty <= 0:
		return reject("invalid qty")
	case price <= 0:
		return reject("invalid price")
	}
	book, ok := eng.books[instrumentID]
	if !ok {
		return reject("invalid instrumentId")
	}

	eng.nextOrderID++
	orderID := eng.nextOrderID
	eng.arrivalSeq++
	arrival := eng.arrivalSeq

	clobschema.SetAddOrderOrderIdOnWire(buf, orderID)
	e.Publish(append([]byte(nil), raw...))

	remaining := qty
	for remaining > 0 {
		h, passive, ok := book.BestOpposite(side)
		if !ok {
			break
		}
		var crosses bool
		if side == clobschema.Side_BUY {
			crosses = passive.Price <= price
		} else {
			crosses = passive.Price >= price
		}
		if !crosses {
			break
		}

		fillQty := remaining
		if passive.Qty < fillQty {
			fillQty = passive.Qty
		}
		eng.emitFill(e, orderID, side, passive.OrderID, oppositeSide(side), passive.Price, fillQty)

		remaining -= fillQty
		passive.Qty -= fillQty
		if passive.Qty == 0 {
			// Remove zeroes the arena slot passive points into.
			passiveID := passive.OrderID
			book.Remove(oppositeSide(side), h)
			if rec, ok := eng.orders[passiveID]; ok {
				rec.status = statusFilled
				rec.handle = intrusive.Nil
			}
		}
	}

	if remaining > 0 {
		o := Order{
			OrderID:       orderID,
			ApplicationID: applicationID,
			InstrumentID:  instrumentID,
			Side:          side,
			Price:         price,
			Qty:           remaining,
			ArrivalSeq:    arrival,
		}
		h := book.Insert(o)
		eng.orders[orderID] = &orderRecord{instrumentID: instrumentID, side: side, handle: h, status: statusResting}
	} else {
		eng.orders[orderID] = &orderRecord{instrumentID: instrumentID, side: side, status: statusFilled}
	}
	return nil
}

// emitFill publishes the alternating aggressor/passive FillOrder pair for
// one match: both carry the same order ids, price, and quantity,
// differing only in which side each reports for.
func (eng *Engine) emitFill(e *bus.Emitter, aggOrderID int32, aggSide clobschema.Side, passOrderID int32, passSide clobschema.Side, price, qty int32) {
	for _, side := range [2]clobschema.Side{aggSide, passSide} {
		fenc := eng.fillEnc.Wrap(eng.scratch)
		fenc.SetAggressorOrderId(aggOrderID)
		fenc.SetPassiveOrderId(passOrderID)
		fenc.SetPrice(price)
		fenc.SetQty(qty)
		fenc.SetSide(side)
		n := fenc.Commit()
		e.Publish(append([]byte(nil), fenc.Buffer().Bytes()[:n]...))
	}
}

// handleCancelOrder rejects a cancel of an order id never issued, or of one
// no longer resting, with a RejectCancel event; otherwise removes it from
// its book and republishes the command as the CancelOrder event.
func (eng *Engine) handleCancelOrder(e *bus.Emitter, applicationID byte, raw []byte) error {
	buf := wire.NewBuffer(raw)
	dec := eng.cancelOrderDec.Wrap(buf, len(raw))
	orderID := dec.OrderId()
	appID := dec.ApplicationId()

	reject := func(reason string) error {
		cenc := eng.rejectCancelEnc.Wrap(eng.scratch)
		cenc.SetApplicationId(appID)
		cenc.SetOrderId(orderID)
		cenc.SetReason([]byte(reason))
		n := cenc.Commit()
		e.Publish(append([]byte(nil), cenc.Buffer().Bytes()[:n]...))
		return nil
	}

	rec, ok := eng.orders[orderID]
	if !ok {
		return reject("unknown order")
	}
	if rec.status != statusResting {
		return reject("too late to cancel")
	}

	book := eng.books[rec.instrumentID]
	book.Remove(rec.side, rec.handle)
	rec.status = statusCancelled
	rec.handle = intrusive.Nil

	cenc := eng.cancelOrderEnc.Wrap(eng.scratch)
	cenc.SetApplicationId(appID)
	cenc.SetOrderId(orderID)
	n := cenc.Commit()
	e.Publish(append([]byte(nil), cenc.Buffer().Bytes()[:n]...))
	return nil
}
