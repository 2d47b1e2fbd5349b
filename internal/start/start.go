// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package start supervises the process's long-running goroutines: the
// event loop that drives the sequencer, the shutdown watcher that exits
// it, and any auxiliary tailers. Start owns the signal-to-cancel wiring;
// RunAll owns the one-fails-all-stop group semantics.
package start

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"
)

// StartFunc is one supervised unit of work. It must return promptly once
// ctx is cancelled.
type StartFunc func(ctx context.Context) error

// Start runs run under a context that is cancelled on os.Interrupt, then
// waits up to stopTimeout for run to return. A run that outlives the
// timeout is abandoned and reported as an error rather than blocking
// process exit forever.
func Start(ctx context.Context, stopTimeout time.Duration, run StartFunc) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}
	stop()

	select {
	case err := <-done:
		return err
	case <-time.After(stopTimeout):
		return fmt.Errorf("start: shutdown timed out after %v", stopTimeout)
	}
}

// RunAll runs every run concurrently and blocks until all have returned.
// The first error cancels the shared context, asking the remaining runs
// to stop; that first error is returned.
func RunAll(ctx context.Context, runs ...StartFunc) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, run := range runs {
		run := run
		group.Go(func() error { return run(ctx) })
	}
	return group.Wait()
}
