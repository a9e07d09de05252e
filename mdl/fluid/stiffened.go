// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// StiffenedGas implements the stiffened gas equation of state
//
//	 p = (γ - 1)・(e - q)/v - γ・p∞
//	 T = (e - q - p∞・v)/cv
//	 c = √(γ・(p + p∞)・v)
//
//	Only some functions provide analytical derivatives; the others rely on the
//	derivative fallback policy of Fluid.
type StiffenedGas struct {
	γ    float64 // ratio of specific heats
	cv   float64 // isochoric specific heat [J/(kg・K)]
	q    float64 // reference internal energy [J/kg]
	pinf float64 // stiffening pressure [Pa]
	μ    float64 // viscosity [Pa・s]
	k    float64 // thermal conductivity [W/(m・K)]
	M    float64 // molar mass [kg/mol]
}

// add model to factory
func init() {
	allocators["stiffened-gas"] = func() Model { return new(StiffenedGas) }
}

// Init initialises model
func (o *StiffenedGas) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gamma":
			o.γ = p.V
		case "cv":
			o.cv = p.V
		case "q":
			o.q = p.V
		case "p_inf":
			o.pinf = p.V
		case "mu":
			o.μ = p.V
		case "k":
			o.k = p.V
		case "molar_mass":
			o.M = p.V
		default:
			return chk.Err("stiffened-gas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.γ <= 1 {
		return chk.Err("stiffened-gas: gamma must be greater than 1. %g is invalid\n", o.γ)
	}
	if o.cv <= 0 {
		return chk.Err("stiffened-gas: cv must be positive. %g is invalid\n", o.cv)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o StiffenedGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // liquid water; Métayer et al. (2004)
			&dbf.P{N: "gamma", V: 2.35},
			&dbf.P{N: "cv", V: 1816},
			&dbf.P{N: "q", V: -1.167e6},
			&dbf.P{N: "p_inf", V: 1.0e9},
			&dbf.P{N: "mu", V: 0.001},
			&dbf.P{N: "k", V: 0.6},
			&dbf.P{N: "molar_mass", V: 0.018015},
		}
	}
	return dbf.Params{
		&dbf.P{N: "gamma", V: o.γ},
		&dbf.P{N: "cv", V: o.cv},
		&dbf.P{N: "q", V: o.q},
		&dbf.P{N: "p_inf", V: o.pinf},
		&dbf.P{N: "mu", V: o.μ},
		&dbf.P{N: "k", V: o.k},
		&dbf.P{N: "molar_mass", V: o.M},
	}
}

// Funcs registers property functions
func (o *StiffenedGas) Funcs(tab *Table) {
	tab.SetName("stiffened-gas")
	if o.M > 0 {
		tab.SetConst(MolarMass, o.M)
	}
	tab.Set(PFromVE, val(o.pFromVE), o.pFromVE)
	tab.Set(TFromVE, val(o.tFromVE), o.tFromVE)
	tab.Set(CFromVE, o.cFromVE, nil)
	tab.Set(CvFromVE, cte(o.cv), zero(o.cv))
	tab.Set(CpFromVE, cte(o.γ*o.cv), zero(o.γ*o.cv))
	tab.Set(MuFromVE, cte(o.μ), nil)
	tab.Set(KFromVE, cte(o.k), nil)
	tab.Set(RhoFromPT, val(o.rhoFromPT), o.rhoFromPT)
	tab.Set(EFromPT, o.eFromPT, nil)
	tab.Set(HFromPT, val(o.hFromPT), o.hFromPT)
	tab.Set(CpFromPT, cte(o.γ*o.cv), zero(o.γ*o.cv))
	tab.Set(CvFromPT, cte(o.cv), zero(o.cv))
	tab.Set(MuFromPT, cte(o.μ), nil)
	tab.Set(KFromPT, cte(o.k), nil)
	tab.Set(EFromPRho, val(o.eFromPRho), o.eFromPRho)
	tab.Set1(ESpndlFromV, val1(o.eSpndlFromV), o.eSpndlFromV)
}

func (o StiffenedGas) pFromVE(v, e float64) (p, dpdv, dpde float64, err error) {
	p = (o.γ-1)*(e-o.q)/v - o.γ*o.pinf
	dpdv = -(o.γ - 1) * (e - o.q) / (v * v)
	dpde = (o.γ - 1) / v
	return
}

func (o StiffenedGas) tFromVE(v, e float64) (T, dTdv, dTde float64, err error) {
	T = (e - o.q - o.pinf*v) / o.cv
	return T, -o.pinf / o.cv, 1 / o.cv, nil
}

func (o StiffenedGas) cFromVE(v, e float64) (float64, error) {
	p, _, _, _ := o.pFromVE(v, e)
	arg := o.γ * (p + o.pinf) * v
	if arg < 0 {
		return 0, chk.Err("stiffened-gas: speed of sound is not real at v=%g, e=%g\n", v, e)
	}
	return math.Sqrt(arg), nil
}

// rhoFromPT computes ρ = (p + p∞)/((γ-1)・cv・T)
func (o StiffenedGas) rhoFromPT(p, T float64) (ρ, dρdp, dρdT float64, err error) {
	den := (o.γ - 1) * o.cv * T
	ρ = (p + o.pinf) / den
	return ρ, 1 / den, -ρ / T, nil
}

// eFromPT computes e = cv・T・(p + γ・p∞)/(p + p∞) + q
func (o StiffenedGas) eFromPT(p, T float64) (float64, error) {
	return o.cv*T*(p+o.γ*o.pinf)/(p+o.pinf) + o.q, nil
}

func (o StiffenedGas) hFromPT(p, T float64) (h, dhdp, dhdT float64, err error) {
	return o.γ*o.cv*T + o.q, 0, o.γ * o.cv, nil
}

// eSpndlFromV computes e = p∞・v + q where c = 0
func (o StiffenedGas) eSpndlFromV(v float64) (e, dedv float64, err error) {
	return o.pinf*v + o.q, o.pinf, nil
}

// eFromPRho computes e = (p + γ・p∞)/((γ-1)・ρ) + q
func (o StiffenedGas) eFromPRho(p, ρ float64) (e, dedp, dedρ float64, err error) {
	a := (p + o.γ*o.pinf) / ((o.γ - 1) * ρ)
	return a + o.q, 1 / ((o.γ - 1) * ρ), -a / ρ, nil
}
