// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds cmd/corebus's flag-parsed startup configuration:
// the process's application identity, the sequencer's replay retention,
// and the event loop's busy-poll/blocking selector choice.
package config

import (
	"errors"
	"flag"
)

var (
	applicationName = flag.String("application", "", "this process's application name, announced as the first ApplicationDefinition command")
	replayDepth     = flag.Int("replay-depth", 1024, "number of most recent events the sequencer retains for late-joining subscribers")
	busyPoll        = flag.Bool("busy-poll", false, "run the event loop's selector in busy-poll mode instead of blocking with a timeout")
)

// Config is cmd/corebus's parsed startup configuration.
type Config struct {
	ApplicationName string
	ReplayDepth     int
	BusyPoll        bool
}

// Load parses the process's flags (if not already parsed) and validates
// them into a Config.
func Load() (*Config, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	if len(*applicationName) == 0 {
		return nil, errors.New("config: missing -application")
	}
	return &Config{
		ApplicationName: *applicationName,
		ReplayDepth:     *replayDepth,
		BusyPoll:        *busyPoll,
	}, nil
}
