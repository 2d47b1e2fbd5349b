// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command corebus runs a single-writer sequencer over the clobschema
// example: an in-process matching engine reachable only by this
// process's own scheduled tasks, since this module carries no network
// transport binding (bus/client.go's Transport interface is the seam one
// would implement later). It announces itself with ApplicationDefinition,
// heartbeats once a second, and tails its own event log until
// interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/solidcoredata/corebus/bus"
	"github.com/solidcoredata/corebus/clobschema"
	"github.com/solidcoredata/corebus/eventloop"
	"github.com/solidcoredata/corebus/internal/config"
	"github.com/solidcoredata/corebus/internal/start"
	"github.com/solidcoredata/corebus/matching"
	"github.com/solidcoredata/corebus/pipeline"
)

// selfApplicationID is this process's own applicationId on the bus it
// hosts, used only to announce itself and to send heartbeats.
const selfApplicationID byte = 0

const (
	heartbeatInterval = time.Second
	resyncInterval    = 500 * time.Millisecond
)

func main() {
	flag.Parse()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	err = start.Start(context.Background(), 5*time.Second, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
	if err != nil {
		log.Print(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	seq := bus.NewSequencer(cfg.ReplayDepth)
	seq.RegisterApplication(selfApplicationID)
	seq.RegisterHandler(clobschema.HeartbeatMessageType, echoHandler)

	engine := matching.NewEngine()
	engine.RegisterHandlers(seq)

	pub := pipeline.NewBufferedPublisher(selfApplicationID, seq)
	provider := clobschema.NewProvider(pub)

	loop := eventloop.NewLoop(cfg.BusyPoll)

	appEnc, err := provider.NewApplicationDefinition()
	if err != nil {
		return err
	}
	appEnc.SetApplicationId(uint16(selfApplicationID))
	appEnc.SetName([]byte(cfg.ApplicationName))
	if err := provider.SendApplicationDefinition(appEnc); err != nil {
		return err
	}

	var heartbeatSeq int32
	_, err = loop.Scheduler.ScheduleEvery(int64(heartbeatInterval), func(now int64) {
		heartbeatSeq++
		enc, err := provider.NewHeartbeat()
		if err != nil {
			log.Printf("corebus: acquire heartbeat buffer: %v", err)
			return
		}
		enc.SetApplicationId(uint16(selfApplicationID))
		enc.SetSeqNum(heartbeatSeq)
		if err := provider.SendHeartbeat(enc); err != nil {
			log.Printf("corebus: send heartbeat: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Supervise the loop and its watchers together: the first failure
	// cancels the group, the watcher exits the loop, and RunAll drains
	// everything before returning.
	return start.RunAll(ctx,
		func(ctx context.Context) error {
			<-ctx.Done()
			loop.Exit()
			return nil
		},
		func(ctx context.Context) error {
			loop.Run()
			return nil
		},
		func(ctx context.Context) error {
			return tailEvents(ctx, seq, cfg.ApplicationName)
		},
	)
}

// tailEvents follows the sequencer's event log through a bus client on
// its own goroutine, surfacing rejects in the process log. The replay
// buffer and the tailer's own dispatcher are its only shared state, so
// it never touches data owned by the event loop thread.
func tailEvents(ctx context.Context, seq *bus.Sequencer, clientID string) error {
	dispatcher := clobschema.NewDispatcher()
	dispatcher.OnSequencerReject(func(dec *clobschema.SequencerRejectDecoder) {
		reason, _ := dec.Reason()
		log.Printf("corebus: sequencer rejected a type %d command: %s", dec.OriginalMessageType(), reason)
	})
	dispatcher.OnRejectOrder(func(dec *clobschema.RejectOrderDecoder) {
		reason, _ := dec.Reason()
		log.Printf("corebus: order rejected: %s", reason)
	})

	client := bus.NewClient(clientID, bus.NewLocalTransport(seq), dispatcher)
	ticker := time.NewTicker(resyncInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := client.Resync(); err != nil {
				return err
			}
		}
	}
}

// echoHandler republishes a command unchanged as its corresponding
// event, the Heartbeat message's entire command/event contract.
func echoHandler(e *bus.Emitter, applicationID byte, raw []byte) error {
	e.Publish(raw)
	return nil
}
