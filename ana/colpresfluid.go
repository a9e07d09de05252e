// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). The analytical solution assumes:
//
//    R    = R0 + C・(p - p0)   thus   dR/dp = C
//
// The numerical solution uses the density of an actual fluid, if given:
//
//    Z(z) = zmax + T・(z - zmax)   with 0 ≤ T ≤ 1    T is a pseudo variable
//    dZ   = (z - zmax)・dT
//    dp   = R(p)・g・(-dZ)
//    dp   = R(p)・g・(zmax - z)・dT
//    Δz   = zmax - z
//
//            / dp/dT \    / R(p)・g・Δz \
//    dY/dT = |        | = |             |
//            \ dR/dT /    \  C・dp/dT   /
//
type ColumnFluidPressure struct {
	R0     float64 // intrinsic density corresponding to p0
	P0     float64 // pressure corresponding to R0
	C      float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Grav   float64 // gravity acceleration (positive constant)
	H      float64 // elevation where (R0,p0) is known
	Nsteps int     // number of steps of the numerical solution; default = 1000

	fld  *fluid.Fluid // fluid with rho_from_p_T; nil => use linear R(p)
	temp float64      // (constant) temperature of fluid
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
	o.Nsteps = 1000
}

// NewColumnFromFluid initialises a column using the density of fld at (p0, T)
//
//	R0 = ρ(p0, T)   and   C = ∂ρ/∂p(p0, T)
func NewColumnFromFluid(fld *fluid.Fluid, p0, T, g, H float64) (o *ColumnFluidPressure, err error) {
	R0, C, _, err := fld.Derivs(fluid.RhoFromPT, p0, T)
	if err != nil {
		return
	}
	if R0 <= 0 {
		return nil, chk.Err("column: density of fluid %q must be positive. R0=%g is invalid", fld.Name, R0)
	}
	if C <= 0 {
		return nil, chk.Err("column: fluid %q must be compressible (∂ρ/∂p > 0). C=%g is invalid", fld.Name, C)
	}
	o = new(ColumnFluidPressure)
	o.Init(R0, p0, C, g, H)
	o.fld = fld
	o.temp = T
	return
}

// Calc computes pressure and density
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density using the classical Runge-Kutta method
func (o ColumnFluidPressure) CalcNum(z float64) (p, R float64, err error) {
	Δz := o.H - z
	n := o.Nsteps
	if n < 1 {
		n = 1000
	}
	dT := 1.0 / float64(n)
	f := func(p float64) (float64, error) {
		R, err := o.density(p)
		return R * o.Grav * Δz, err
	}
	var k1, k2, k3, k4 float64
	p = o.P0
	for i := 0; i < n; i++ {
		if k1, err = f(p); err != nil {
			return
		}
		if k2, err = f(p + 0.5*dT*k1); err != nil {
			return
		}
		if k3, err = f(p + 0.5*dT*k2); err != nil {
			return
		}
		if k4, err = f(p + dT*k3); err != nil {
			return
		}
		p += dT * (k1 + 2.0*k2 + 2.0*k3 + k4) / 6.0
	}
	R, err = o.density(p)
	return
}

// Profile computes pressure and density at np points along the column
func (o ColumnFluidPressure) Profile(np int, numerical bool) (Z, P, R []float64, err error) {
	Z = utl.LinSpace(0, o.H, np)
	P = make([]float64, np)
	R = make([]float64, np)
	for i, z := range Z {
		if numerical {
			P[i], R[i], err = o.CalcNum(z)
			if err != nil {
				return
			}
			continue
		}
		P[i], R[i] = o.Calc(z)
	}
	return
}

// density returns the intrinsic density at pressure p
func (o ColumnFluidPressure) density(p float64) (float64, error) {
	if o.fld == nil {
		return o.R0 + o.C*(p-o.P0), nil
	}
	return o.fld.Value(fluid.RhoFromPT, p, o.temp)
}
