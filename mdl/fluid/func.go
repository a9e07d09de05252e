// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/cpmech/gofluid/ad"

// Func binds a property function to a Fluid so consumers can keep a handle
// to, e.g., "rho_from_p_T" and call any of its three forms
type Func struct {
	fluid *Fluid
	desc  Desc
}

// Func returns the handle of a two-argument property function
func (o *Fluid) Func(d Desc) Func {
	return Func{o, d}
}

// Desc returns the descriptor
func (o Func) Desc() Desc { return o.desc }

// String returns the function name
func (o Func) String() string { return o.desc.String() }

// Value computes v = f(a, b)
func (o Func) Value(a, b float64) (float64, error) {
	return o.fluid.Value(o.desc, a, b)
}

// Derivs computes v = f(a, b), ∂f/∂a and ∂f/∂b
func (o Func) Derivs(a, b float64) (v, dvda, dvdb float64, err error) {
	return o.fluid.Derivs(o.desc, a, b)
}

// AD computes f(A, B) with dual numbers
func (o Func) AD(A, B ad.Dual) (ad.Dual, error) {
	return o.fluid.AD(o.desc, A, B)
}

// RhoMuFromPT computes density and viscosity together, with derivatives
func (o *Fluid) RhoMuFromPT(p, T float64) (rho, drhodp, drhodT, mu, dmudp, dmudT float64, err error) {
	rho, drhodp, drhodT, err = o.Derivs(RhoFromPT, p, T)
	if err != nil {
		return
	}
	mu, dmudp, dmudT, err = o.Derivs(MuFromPT, p, T)
	return
}

// RhoEFromPT computes density and internal energy together, with derivatives
func (o *Fluid) RhoEFromPT(p, T float64) (rho, drhodp, drhodT, e, dedp, dedT float64, err error) {
	rho, drhodp, drhodT, err = o.Derivs(RhoFromPT, p, T)
	if err != nil {
		return
	}
	e, dedp, dedT, err = o.Derivs(EFromPT, p, T)
	return
}

// RhoMuFromPTAD computes density and viscosity together with dual numbers
func (o *Fluid) RhoMuFromPTAD(P, T ad.Dual) (rho, mu ad.Dual, err error) {
	rho, err = o.AD(RhoFromPT, P, T)
	if err != nil {
		return
	}
	mu, err = o.AD(MuFromPT, P, T)
	return
}
