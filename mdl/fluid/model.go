// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements fluid property models and the machinery to evaluate
// their values, analytical derivatives and derivatives with respect to any number
// of degrees of freedom (dual numbers)
//
//	Each model (correlation) registers, for every property function it supports:
//	 value form       f(a, b)                 required
//	 derivative form  f(a, b), ∂f/∂a, ∂f/∂b   optional
//	The dual-number form is always derived from the derivative form by the chain rule.
//	When the derivative form is missing, Fluid either fails (strict) or warns once and
//	returns zero derivatives (lenient).
package fluid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines fluid property models (correlations, equations of state)
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Funcs(tab *Table)                // registers available property functions
}

// ValueFunc computes a property from two arguments
type ValueFunc func(a, b float64) (float64, error)

// DerivFunc computes a property and its partial derivatives w.r.t the two arguments
type DerivFunc func(a, b float64) (v, dvda, dvdb float64, err error)

// ValueFunc1 computes a property from one argument
type ValueFunc1 func(a float64) (float64, error)

// DerivFunc1 computes a property and its derivative w.r.t the argument
type DerivFunc1 func(a float64) (v, dvda float64, err error)

// Table holds the property functions implemented by a model
type Table struct {
	name   string
	f2     map[Desc]entry
	f1     map[Desc1]entry1
	consts map[Const]float64
}

type entry struct {
	value  ValueFunc
	derivs DerivFunc // nil if not implemented
}

type entry1 struct {
	value  ValueFunc1
	derivs DerivFunc1 // nil if not implemented
}

// newTable allocates a new Table
func newTable() *Table {
	return &Table{
		f2:     make(map[Desc]entry),
		f1:     make(map[Desc1]entry1),
		consts: make(map[Const]float64),
	}
}

// Set registers a two-argument function. derivs may be nil
//
//	Note: panics if value is nil since the value form cannot be replaced by anything else
func (o *Table) Set(d Desc, value ValueFunc, derivs DerivFunc) {
	if value == nil {
		chk.Panic("%s: value form is required", d)
	}
	o.f2[d] = entry{value, derivs}
}

// Set1 registers a one-argument function. derivs may be nil
func (o *Table) Set1(d Desc1, value ValueFunc1, derivs DerivFunc1) {
	if value == nil {
		chk.Panic("%s: value form is required", d)
	}
	o.f1[d] = entry1{value, derivs}
}

// SetConst sets a constant
func (o *Table) SetConst(c Const, v float64) {
	o.consts[c] = v
}

// SetName sets the name of the fluid; e.g. "water"
func (o *Table) SetName(name string) {
	o.name = name
}

// NewModel returns a new (uninitialised) fluid model
func NewModel(kind string) (model Model, err error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("model %q is not available in 'fluid' database", kind)
	}
	return allocator(), nil
}

// Register adds a model to the factory
//
//	Note: panics if kind is already registered
func Register(kind string, allocator func() Model) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("model %q is already registered in 'fluid' database", kind)
	}
	allocators[kind] = allocator
}

// Kinds returns the (sorted) names of all registered models
func Kinds() []string {
	res := make([]string, 0, len(allocators))
	for k := range allocators {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// allocators holds all available models
var allocators = map[string]func() Model{}
