// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Poly implements transport properties with cubic polynomials of temperature
//
//   k(p,T)  = a0 + a1・θ + a2・θ² + a3・θ³ + ap・(p - pref)
//   μ(p,T)  = b0 + b1・θ + b2・θ² + b3・θ³
//
//   θ = T - Tref
//
//  The (ρ,T) versions use the same polynomials but do not provide derivatives.
type Poly struct {
	a    []float64 // conductivity coefficients
	b    []float64 // viscosity coefficients
	ap   float64   // pressure coefficient of conductivity
	pref float64   // reference pressure
	Tref float64   // reference temperature
}

// add model to factory
func init() {
	allocators["poly"] = func() Model { return new(Poly) }
}

// Init initialises this structure
func (o *Poly) Init(prms dbf.Params) (err error) {

	// a[i] and b[i] parameters
	o.a = make([]float64, 4)
	o.b = make([]float64, 4)
	akeys := []string{"a0", "a1", "a2", "a3"}
	bkeys := []string{"b0", "b1", "b2", "b3"}
	avals, afound := prms.GetValues(akeys)
	bvals, bfound := prms.GetValues(bkeys)
	if !utl.AllTrue(afound) && !utl.AllTrue(bfound) {
		return chk.Err("poly model: either ['a0', 'a1', 'a2', 'a3'] or ['b0', 'b1', 'b2', 'b3'] must be given in database of material parameters")
	}
	for i := 0; i < 4; i++ {
		if afound[i] {
			o.a[i] = avals[i]
		}
		if bfound[i] {
			o.b[i] = bvals[i]
		}
	}

	// other parameters
	for _, p := range prms {
		switch p.N {
		case "a0", "a1", "a2", "a3", "b0", "b1", "b2", "b3":
		case "ap":
			o.ap = p.V
		case "pref":
			o.pref = p.V
		case "Tref":
			o.Tref = p.V
		default:
			return chk.Err("poly: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Poly) GetPrms(example bool) dbf.Params {
	if example || len(o.a) == 0 {
		return dbf.Params{ // liquid water around 20 °C
			&dbf.P{N: "a0", V: 0.598},
			&dbf.P{N: "a1", V: 1.6e-3},
			&dbf.P{N: "a2", V: -6.0e-6},
			&dbf.P{N: "a3", V: 0},
			&dbf.P{N: "b0", V: 1.002e-3},
			&dbf.P{N: "b1", V: -2.3e-5},
			&dbf.P{N: "b2", V: 2.4e-7},
			&dbf.P{N: "b3", V: 0},
			&dbf.P{N: "ap", V: 1.0e-10},
			&dbf.P{N: "pref", V: 101325},
			&dbf.P{N: "Tref", V: 293.15},
		}
	}
	return dbf.Params{
		&dbf.P{N: "a0", V: o.a[0]},
		&dbf.P{N: "a1", V: o.a[1]},
		&dbf.P{N: "a2", V: o.a[2]},
		&dbf.P{N: "a3", V: o.a[3]},
		&dbf.P{N: "b0", V: o.b[0]},
		&dbf.P{N: "b1", V: o.b[1]},
		&dbf.P{N: "b2", V: o.b[2]},
		&dbf.P{N: "b3", V: o.b[3]},
		&dbf.P{N: "ap", V: o.ap},
		&dbf.P{N: "pref", V: o.pref},
		&dbf.P{N: "Tref", V: o.Tref},
	}
}

// Funcs registers property functions
func (o *Poly) Funcs(tab *Table) {
	tab.Set(KFromPT, val(o.kFromPT), o.kFromPT)
	tab.Set(MuFromPT, val(o.muFromPT), o.muFromPT)
	tab.Set(KFromRhoT, func(ρ, T float64) (float64, error) {
		return cubic(o.a, T-o.Tref), nil
	}, nil)
	tab.Set(MuFromRhoT, func(ρ, T float64) (float64, error) {
		return cubic(o.b, T-o.Tref), nil
	}, nil)
}

func (o Poly) kFromPT(p, T float64) (k, dkdp, dkdT float64, err error) {
	θ := T - o.Tref
	return cubic(o.a, θ) + o.ap*(p-o.pref), o.ap, dcubic(o.a, θ), nil
}

func (o Poly) muFromPT(p, T float64) (μ, dμdp, dμdT float64, err error) {
	θ := T - o.Tref
	return cubic(o.b, θ), 0, dcubic(o.b, θ), nil
}

// cubic computes c0 + c1 u + c2 u² + c3 u³
func cubic(c []float64, u float64) float64 {
	return c[0] + c[1]*u + c[2]*u*u + c[3]*u*u*u
}

// dcubic computes d(cubic)/du
func dcubic(c []float64, u float64) float64 {
	return c[1] + 2.0*c[2]*u + 3.0*c[3]*u*u
}
