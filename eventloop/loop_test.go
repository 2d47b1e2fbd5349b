// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/eventloop"
)

func TestLoopBusyPollFiresDueTasks(t *testing.T) {
	l := eventloop.NewLoop(true)
	fired := false
	_, err := l.Scheduler.ScheduleIn(int64(time.Millisecond), func(int64) { fired = true })
	require.NoError(t, err)

	deadline := time.Now().Add(time.Second)
	for !fired && time.Now().Before(deadline) {
		l.RunOnce()
	}
	require.True(t, fired)
}

func TestLoopExitStopsRun(t *testing.T) {
	l := eventloop.NewLoop(true)
	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()
	l.Exit()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit")
	}
}
