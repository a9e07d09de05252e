// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"sort"
	"sync/atomic"
)

// Warnings holds one "already warned" latch per property function of a Fluid
//
//	Only functions implementing the value form but not the derivative form need a
//	latch; the set of keys is fixed when the Fluid is created and never changes
//	afterwards, so concurrent readers need no lock.
type Warnings struct {
	latches map[string]*atomic.Bool
}

// newWarnings allocates latches for the given function names
func newWarnings(names []string) *Warnings {
	o := &Warnings{latches: make(map[string]*atomic.Bool, len(names))}
	for _, n := range names {
		o.latches[n] = new(atomic.Bool)
	}
	return o
}

// first sets the latch of fcn and returns true if this call was the one that set it
func (o *Warnings) first(fcn string) bool {
	l, ok := o.latches[fcn]
	if !ok {
		return false
	}
	return l.CompareAndSwap(false, true)
}

// Warned tells whether a warning for fcn has been issued already
func (o *Warnings) Warned(fcn string) bool {
	l, ok := o.latches[fcn]
	return ok && l.Load()
}

// Issued returns the (sorted) names of functions that have been warned about
func (o *Warnings) Issued() (names []string) {
	for n, l := range o.latches {
		if l.Load() {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return
}

// Reset clears all latches; e.g. to start a new session or test case
func (o *Warnings) Reset() {
	for _, l := range o.latches {
		l.Store(false)
	}
}
