// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements destinations for diagnostics emitted while evaluating models
package diag

import (
	"sync"

	"github.com/cpmech/gosl/io"
)

// Event holds one diagnostic
type Event struct {
	Model string // name of model instance; e.g. "air"
	Func  string // name of function; e.g. "p_from_v_e"
	Msg   string // message
}

// Sink receives diagnostics
//
//	Note: implementations must be safe for concurrent use
type Sink interface {
	Warn(e Event)
}

// Printer prints diagnostics to the console
type Printer struct {
	Silent bool // do not print anything
}

// Warn prints a warning in yellow
func (o Printer) Warn(e Event) {
	if o.Silent {
		return
	}
	io.PfYel("WARNING: %s: %s: %s\n", e.Model, e.Func, e.Msg)
}

// Recorder keeps all diagnostics in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Warn records e
func (o *Recorder) Warn(e Event) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
}

// Events returns a copy of all recorded events
func (o *Recorder) Events() []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	res := make([]Event, len(o.events))
	copy(res, o.events)
	return res
}

// Len returns the number of recorded events
func (o *Recorder) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

// Count returns the number of events for a given function
func (o *Recorder) Count(fcn string) (n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range o.events {
		if e.Func == fcn {
			n++
		}
	}
	return
}

// Reset clears the record
func (o *Recorder) Reset() {
	o.mu.Lock()
	o.events = nil
	o.mu.Unlock()
}

// Multi forwards diagnostics to all sinks
type Multi []Sink

// Warn forwards e
func (o Multi) Warn(e Event) {
	for _, s := range o {
		if s != nil {
			s.Warn(e)
		}
	}
}
