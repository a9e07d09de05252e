// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"sort"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gofluid/diag"
	"github.com/cpmech/gosl/fun/dbf"
)

// Options holds the configuration of a Fluid. It cannot be changed after New
type Options struct {
	Strict bool      // fail if derivatives are not implemented; otherwise warn once and return zero derivatives
	Sink   diag.Sink // receives warnings in lenient mode; nil => diag.Printer
}

// Fluid evaluates the property functions of an initialised model
//
//	Fluid is safe for concurrent use: the model and the tables are read-only after
//	New; the only mutable state is the set of warning latches.
type Fluid struct {
	Name  string // name of this instance; e.g. "air"
	Model Model  // underlying model

	tab    *Table
	strict bool
	sink   diag.Sink
	warn   *Warnings
}

// New returns a Fluid for an initialised model
func New(name string, mdl Model, opts Options) (o *Fluid) {
	o = &Fluid{Name: name, Model: mdl, tab: newTable(), strict: opts.Strict, sink: opts.Sink}
	if o.sink == nil {
		o.sink = diag.Printer{}
	}
	mdl.Funcs(o.tab)
	o.tab.derive()
	var lenient []string
	for d, e := range o.tab.f2 {
		if e.derivs == nil {
			lenient = append(lenient, d.String())
		}
	}
	for d, e := range o.tab.f1 {
		if e.derivs == nil {
			lenient = append(lenient, d.String())
		}
	}
	o.warn = newWarnings(lenient)
	return
}

// Alloc allocates and initialises a model of given kind and returns the corresponding Fluid
func Alloc(name, kind string, prms dbf.Params, opts Options) (o *Fluid, err error) {
	mdl, err := NewModel(kind)
	if err != nil {
		return
	}
	err = mdl.Init(prms)
	if err != nil {
		return
	}
	return New(name, mdl, opts), nil
}

// Strict returns the derivative fallback policy
func (o *Fluid) Strict() bool {
	return o.strict
}

// Warnings returns the set of warning latches of this instance
func (o *Fluid) Warnings() *Warnings {
	return o.warn
}

// FluidName returns the name of the fluid as given by the model; e.g. "water"
func (o *Fluid) FluidName() (string, error) {
	if o.tab.name == "" {
		return "", o.err(ValueNotImplemented, "fluidName", nil)
	}
	return o.tab.name, nil
}

// Const returns a constant; e.g. the molar mass
func (o *Fluid) Const(c Const) (float64, error) {
	v, ok := o.tab.consts[c]
	if !ok {
		return 0, o.err(ValueNotImplemented, string(c), nil)
	}
	return v, nil
}

// Supports tells whether the value form of d is implemented
func (o *Fluid) Supports(d Desc) bool {
	_, ok := o.tab.f2[d]
	return ok
}

// HasDerivs tells whether the derivative form of d is implemented
func (o *Fluid) HasDerivs(d Desc) bool {
	return o.tab.f2[d].derivs != nil
}

// Supports1 tells whether the value form of d is implemented
func (o *Fluid) Supports1(d Desc1) bool {
	_, ok := o.tab.f1[d]
	return ok
}

// HasDerivs1 tells whether the derivative form of d is implemented
func (o *Fluid) HasDerivs1(d Desc1) bool {
	return o.tab.f1[d].derivs != nil
}

// Implemented returns all two-argument functions with value form, sorted by name
func (o *Fluid) Implemented() (res []Desc) {
	for d := range o.tab.f2 {
		res = append(res, d)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return
}

// Value computes the value of a two-argument property function
func (o *Fluid) Value(d Desc, a, b float64) (float64, error) {
	e, ok := o.tab.f2[d]
	if !ok {
		return 0, o.err(ValueNotImplemented, d.String(), nil)
	}
	return e.value(a, b)
}

// Derivs computes the value of a two-argument property function and its partial derivatives
//
//	If the model does not implement the derivative form:
//	 strict:  returns DerivsNotImplemented
//	 lenient: returns the value with dvda = dvdb = 0 and warns once; a failing
//	          value form returns its error without warning
func (o *Fluid) Derivs(d Desc, a, b float64) (v, dvda, dvdb float64, err error) {
	e, ok := o.tab.f2[d]
	if !ok {
		err = o.err(ValueNotImplemented, d.String(), nil)
		return
	}
	if e.derivs != nil {
		return e.derivs(a, b)
	}
	if o.strict {
		err = o.fallback(d.String())
		return
	}
	v, err = e.value(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	err = o.fallback(d.String())
	return
}

// AD computes a two-argument property function with dual numbers
//
//	The result is built from Derivs by the chain rule:
//	 res.V    = f(A.V, B.V)
//	 res.D[i] = ∂f/∂a・A.D[i] + ∂f/∂b・B.D[i]
//	A.D and B.D must have the same length and refer to the same degrees of freedom.
//	In lenient mode, a missing derivative form yields zero derivatives here as well.
func (o *Fluid) AD(d Desc, A, B ad.Dual) (res ad.Dual, err error) {
	if len(A.D) != len(B.D) {
		_, cerr := ad.Chain2(0, 0, 0, A, B)
		err = o.err(PreconditionViolation, d.String(), cerr)
		return
	}
	v, dvda, dvdb, err := o.Derivs(d, A.V, B.V)
	if err != nil {
		return
	}
	return ad.Chain2(v, dvda, dvdb, A, B)
}

// Value1 computes the value of a one-argument property function
func (o *Fluid) Value1(d Desc1, a float64) (float64, error) {
	e, ok := o.tab.f1[d]
	if !ok {
		return 0, o.err(ValueNotImplemented, d.String(), nil)
	}
	return e.value(a)
}

// Derivs1 computes the value of a one-argument property function and its derivative
func (o *Fluid) Derivs1(d Desc1, a float64) (v, dvda float64, err error) {
	e, ok := o.tab.f1[d]
	if !ok {
		err = o.err(ValueNotImplemented, d.String(), nil)
		return
	}
	if e.derivs != nil {
		return e.derivs(a)
	}
	if o.strict {
		err = o.fallback(d.String())
		return
	}
	v, err = e.value(a)
	if err != nil {
		return 0, 0, err
	}
	err = o.fallback(d.String())
	return
}

// AD1 computes a one-argument property function with dual numbers
func (o *Fluid) AD1(d Desc1, A ad.Dual) (res ad.Dual, err error) {
	v, dvda, err := o.Derivs1(d, A.V)
	if err != nil {
		return
	}
	return ad.Chain1(v, dvda, A), nil
}

// fallback applies the derivative fallback policy
func (o *Fluid) fallback(fcn string) error {
	if o.strict {
		return o.err(DerivsNotImplemented, fcn, nil)
	}
	if o.warn.first(fcn) {
		o.sink.Warn(diag.Event{Model: o.Name, Func: fcn, Msg: "derivatives not implemented; using zero derivatives"})
	}
	return nil
}

// err returns a new error
func (o *Fluid) err(kind Kind, fcn string, wrapped error) error {
	return &Error{Kind: kind, Model: o.Name, Func: fcn, Err: wrapped}
}
