// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckDerivs compares the analytical derivatives of d with central differences
//
//	The check is relative: derivatives are divided by max(|ana|, 1) before comparing.
//	hrel is the step relative to the magnitude of each argument; e.g. 1e-6
func CheckDerivs(tst *testing.T, fld *Fluid, d Desc, a, b, tol, hrel float64, verbose bool) {

	// analytical
	_, dvda, dvdb, err := fld.Derivs(d, a, b)
	if err != nil {
		tst.Errorf("Derivs failed: %v\n", err)
		return
	}

	// numerical ∂v/∂a
	sa := scale(dvda)
	chk.DerivScaSca(tst, io.Sf("∂%s/∂%s", d.Want, d.A), tol, dvda/sa, a, step(a, hrel), verbose, func(x float64) float64 {
		v, _ := fld.Value(d, x, b)
		return v / sa
	})

	// numerical ∂v/∂b
	sb := scale(dvdb)
	chk.DerivScaSca(tst, io.Sf("∂%s/∂%s", d.Want, d.B), tol, dvdb/sb, b, step(b, hrel), verbose, func(x float64) float64 {
		v, _ := fld.Value(d, a, x)
		return v / sb
	})
}

// CheckDerivs1 compares the analytical derivative of a one-argument function with central differences
func CheckDerivs1(tst *testing.T, fld *Fluid, d Desc1, a, tol, hrel float64, verbose bool) {
	_, dvda, err := fld.Derivs1(d, a)
	if err != nil {
		tst.Errorf("Derivs1 failed: %v\n", err)
		return
	}
	s := scale(dvda)
	chk.DerivScaSca(tst, io.Sf("d%s/d%s", d.Want, d.A), tol, dvda/s, a, step(a, hrel), verbose, func(x float64) float64 {
		v, _ := fld.Value1(d, x)
		return v / s
	})
}

// CheckAD checks that the dual-number form seeded with unit vectors reproduces the derivative form
func CheckAD(tst *testing.T, fld *Fluid, d Desc, a, b float64) {
	v, dvda, dvdb, err := fld.Derivs(d, a, b)
	if err != nil {
		tst.Errorf("Derivs failed: %v\n", err)
		return
	}
	X := ad.Vars(a, b)
	res, err := fld.AD(d, X[0], X[1])
	if err != nil {
		tst.Errorf("AD failed: %v\n", err)
		return
	}
	chk.Float64(tst, io.Sf("%v: value", d), 1e-17, res.V, v)
	chk.Float64(tst, io.Sf("%v: ∂/∂%s", d, d.A), 1e-17, res.D[0], dvda)
	chk.Float64(tst, io.Sf("%v: ∂/∂%s", d, d.B), 1e-17, res.D[1], dvdb)
}

// five-point central difference formula
//
//	df/dx ≈ (f(x-2h) - 8f(x-h) + 8f(x+h) - f(x+2h)) / 12h
var central5 = fd.Formula{
	Stencil: []fd.Point{
		{Loc: -2, Coeff: 1.0 / 12.0},
		{Loc: -1, Coeff: -8.0 / 12.0},
		{Loc: 1, Coeff: 8.0 / 12.0},
		{Loc: 2, Coeff: -1.0 / 12.0},
	},
	Derivative: 1,
	Step:       1e-3,
}

// NumDerivs computes ∂f/∂a and ∂f/∂b with the five-point central difference formula
// using the value form of d
func NumDerivs(fld *Fluid, d Desc, a, b, hrel float64) (dvda, dvdb float64, err error) {
	dvda, err = numDeriv(func(x float64) (float64, error) { return fld.Value(d, x, b) }, a, step(a, hrel))
	if err != nil {
		return
	}
	dvdb, err = numDeriv(func(x float64) (float64, error) { return fld.Value(d, a, x) }, b, step(b, hrel))
	return
}

// NumDerivs1 computes df/da of a one-argument function with the five-point central difference formula
func NumDerivs1(fld *Fluid, d Desc1, a, hrel float64) (dvda float64, err error) {
	return numDeriv(func(x float64) (float64, error) { return fld.Value1(d, x) }, a, step(a, hrel))
}

// numDeriv computes df/dx with fd.Derivative; the first error of f is returned
func numDeriv(f func(x float64) (float64, error), x, h float64) (res float64, err error) {
	res = fd.Derivative(func(x float64) float64 {
		v, e := f(x)
		if e != nil && err == nil {
			err = e
		}
		return v
	}, x, &fd.Settings{Formula: central5, Step: h})
	if err != nil {
		return 0, err
	}
	return
}

// step returns the finite difference step for x
func step(x, hrel float64) float64 {
	if x == 0 {
		return hrel
	}
	return hrel * math.Abs(x)
}

// scale returns the normalisation factor for a derivative
func scale(ana float64) float64 {
	return math.Max(math.Abs(ana), 1)
}
