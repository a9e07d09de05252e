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

// Rgas is the universal gas constant [J/(mol・K)]
const Rgas = 8.3144598

// IdealGas implements the calorically perfect ideal gas
//
//	p = (γ - 1)・ρ・e     e = cv・T     h = cp・T     Rs = R/M = cp - cv
//
//	s = cv・ln(T) + Rs・ln(v)   (zero at T = 1 K and v = 1 m³/kg)
type IdealGas struct {

	// parameters
	γ  float64 // ratio of specific heats
	M  float64 // molar mass [kg/mol]
	μ  float64 // dynamic viscosity (constant) [Pa・s]
	k  float64 // thermal conductivity (constant) [W/(m・K)]
	nm string  // fluid name

	// derived
	rs float64 // specific gas constant
	cv float64 // isochoric specific heat
	cp float64 // isobaric specific heat
}

// add model to factory
func init() {
	allocators["ideal-gas"] = func() Model { return new(IdealGas) }
}

// Init initialises model
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	o.γ, o.M, o.μ, o.k, o.nm = 1.4, 0.029, 18.23e-6, 25.68e-3, "ideal-gas"
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gamma":
			o.γ = p.V
		case "molar_mass":
			o.M = p.V
		case "mu":
			o.μ = p.V
		case "k":
			o.k = p.V
		default:
			return chk.Err("ideal-gas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.γ <= 1 {
		return chk.Err("ideal-gas: gamma must be greater than 1. %g is invalid\n", o.γ)
	}
	if o.M <= 0 {
		return chk.Err("ideal-gas: molar_mass must be positive. %g is invalid\n", o.M)
	}
	o.rs = Rgas / o.M
	o.cv = o.rs / (o.γ - 1)
	o.cp = o.γ * o.cv
	return
}

// GetPrms gets (an example) of parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // dry air
			&dbf.P{N: "gamma", V: 1.4},
			&dbf.P{N: "molar_mass", V: 0.029},
			&dbf.P{N: "mu", V: 18.23e-6},
			&dbf.P{N: "k", V: 25.68e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "gamma", V: o.γ},
		&dbf.P{N: "molar_mass", V: o.M},
		&dbf.P{N: "mu", V: o.μ},
		&dbf.P{N: "k", V: o.k},
	}
}

// Funcs registers property functions
func (o *IdealGas) Funcs(tab *Table) {

	tab.SetName(o.nm)
	tab.SetConst(MolarMass, o.M)

	// (v, e)
	tab.Set(PFromVE, val(o.pFromVE), o.pFromVE)
	tab.Set(TFromVE, val(o.tFromVE), o.tFromVE)
	tab.Set(CFromVE, val(o.cFromVE), o.cFromVE)
	tab.Set(CpFromVE, cte(o.cp), zero(o.cp))
	tab.Set(CvFromVE, cte(o.cv), zero(o.cv))
	tab.Set(MuFromVE, cte(o.μ), zero(o.μ))
	tab.Set(KFromVE, cte(o.k), zero(o.k))
	tab.Set(SFromVE, val(o.sFromVE), o.sFromVE)
	tab.Set(GammaFromVE, cte(o.γ), zero(o.γ))
	tab.Set(GFromVE, o.gFromVE, nil)
	tab.Set(EFromVH, val(o.eFromVH), o.eFromVH)

	// (p, T)
	tab.Set(RhoFromPT, val(o.rhoFromPT), o.rhoFromPT)
	tab.Set(VFromPT, val(o.vFromPT), o.vFromPT)
	tab.Set(EFromPT, val(o.eFromPT), o.eFromPT)
	tab.Set(HFromPT, val(o.hFromPT), o.hFromPT)
	tab.Set(SFromPT, val(o.sFromPT), o.sFromPT)
	tab.Set(CFromPT, val(o.cFromPT), o.cFromPT)
	tab.Set(CpFromPT, cte(o.cp), zero(o.cp))
	tab.Set(CvFromPT, cte(o.cv), zero(o.cv))
	tab.Set(MuFromPT, cte(o.μ), zero(o.μ))
	tab.Set(KFromPT, cte(o.k), zero(o.k))
	tab.Set(BetaFromPT, val(o.betaFromPT), o.betaFromPT)
	tab.Set(GammaFromPT, cte(o.γ), zero(o.γ))

	// others
	tab.Set(MuFromRhoT, cte(o.μ), zero(o.μ))
	tab.Set(KFromRhoT, cte(o.k), zero(o.k))
	tab.Set(EFromPRho, val(o.eFromPRho), o.eFromPRho)
	tab.Set(TFromPH, val(o.tFromPH), o.tFromPH)
	tab.Set(TFromHP, val(o.tFromHP), o.tFromHP)
	tab.Set(SFromHP, val(o.sFromHP), o.sFromHP)
	tab.Set(RhoFromPS, val(o.rhoFromPS), o.rhoFromPS)
	tab.Set(PFromHS, o.pFromHS, nil)
	tab.Set(EFromTV, val(o.eFromTV), o.eFromTV)
	tab.Set(PFromTV, val(o.pFromTV), o.pFromTV)
	tab.Set(HFromTV, val(o.hFromTV), o.hFromTV)
	tab.Set(SFromTV, val(o.sFromTV), o.sFromTV)
	tab.Set(CvFromTV, cte(o.cv), zero(o.cv))
}

func (o IdealGas) pFromVE(v, e float64) (p, dpdv, dpde float64, err error) {
	p = (o.γ - 1) * e / v
	dpdv = -p / v
	dpde = (o.γ - 1) / v
	return
}

func (o IdealGas) tFromVE(v, e float64) (T, dTdv, dTde float64, err error) {
	return e / o.cv, 0, 1 / o.cv, nil
}

func (o IdealGas) cFromVE(v, e float64) (c, dcdv, dcde float64, err error) {
	if e < 0 {
		err = chk.Err("ideal-gas: cannot compute speed of sound with negative internal energy e=%g\n", e)
		return
	}
	c = math.Sqrt(o.γ * (o.γ - 1) * e)
	dcde = 0.5 * o.γ * (o.γ - 1) / c
	return
}

func (o IdealGas) sFromVE(v, e float64) (s, dsdv, dsde float64, err error) {
	s = o.cv*math.Log(e/o.cv) + o.rs*math.Log(v)
	return s, o.rs / v, o.cv / e, nil
}

// gFromVE computes the Gibbs free energy g = h - T・s
func (o IdealGas) gFromVE(v, e float64) (float64, error) {
	T := e / o.cv
	s, _, _, _ := o.sFromVE(v, e)
	return o.cp*T - T*s, nil
}

func (o IdealGas) eFromVH(v, h float64) (e, dedv, dedh float64, err error) {
	return h / o.γ, 0, 1 / o.γ, nil
}

func (o IdealGas) rhoFromPT(p, T float64) (ρ, dρdp, dρdT float64, err error) {
	ρ = p / (o.rs * T)
	return ρ, 1 / (o.rs * T), -ρ / T, nil
}

func (o IdealGas) vFromPT(p, T float64) (v, dvdp, dvdT float64, err error) {
	v = o.rs * T / p
	return v, -v / p, o.rs / p, nil
}

func (o IdealGas) eFromPT(p, T float64) (e, dedp, dedT float64, err error) {
	return o.cv * T, 0, o.cv, nil
}

func (o IdealGas) hFromPT(p, T float64) (h, dhdp, dhdT float64, err error) {
	return o.cp * T, 0, o.cp, nil
}

// sFromPT computes s = cp・ln(T) - Rs・ln(p) + Rs・ln(Rs), consistent with sFromVE
func (o IdealGas) sFromPT(p, T float64) (s, dsdp, dsdT float64, err error) {
	s = o.cp*math.Log(T) - o.rs*math.Log(p) + o.rs*math.Log(o.rs)
	return s, -o.rs / p, o.cp / T, nil
}

func (o IdealGas) cFromPT(p, T float64) (c, dcdp, dcdT float64, err error) {
	c = math.Sqrt(o.γ * o.rs * T)
	return c, 0, 0.5 * o.γ * o.rs / c, nil
}

func (o IdealGas) betaFromPT(p, T float64) (β, dβdp, dβdT float64, err error) {
	return 1 / T, 0, -1 / (T * T), nil
}

func (o IdealGas) eFromPRho(p, ρ float64) (e, dedp, dedρ float64, err error) {
	e = p / ((o.γ - 1) * ρ)
	return e, 1 / ((o.γ - 1) * ρ), -e / ρ, nil
}

func (o IdealGas) tFromPH(p, h float64) (T, dTdp, dTdh float64, err error) {
	return h / o.cp, 0, 1 / o.cp, nil
}

func (o IdealGas) tFromHP(h, p float64) (T, dTdh, dTdp float64, err error) {
	return h / o.cp, 1 / o.cp, 0, nil
}

func (o IdealGas) sFromHP(h, p float64) (s, dsdh, dsdp float64, err error) {
	s, dsdp, dsdT, err := o.sFromPT(p, h/o.cp)
	return s, dsdT / o.cp, dsdp, err
}

// rhoFromPS inverts s(p, T) for T and computes ρ = p/(Rs・T)
//
//	∂ρ/∂p = ρ/(γ・p)   ∂ρ/∂s = -ρ/cp
func (o IdealGas) rhoFromPS(p, s float64) (ρ, dρdp, dρds float64, err error) {
	T := math.Exp((s + o.rs*math.Log(p) - o.rs*math.Log(o.rs)) / o.cp)
	ρ = p / (o.rs * T)
	return ρ, ρ / (o.γ * p), -ρ / o.cp, nil
}

func (o IdealGas) pFromHS(h, s float64) (float64, error) {
	T := h / o.cp
	return math.Exp((o.cp*math.Log(T) + o.rs*math.Log(o.rs) - s) / o.rs), nil
}

func (o IdealGas) eFromTV(T, v float64) (e, dedT, dedv float64, err error) {
	return o.cv * T, o.cv, 0, nil
}

func (o IdealGas) pFromTV(T, v float64) (p, dpdT, dpdv float64, err error) {
	p = o.rs * T / v
	return p, o.rs / v, -p / v, nil
}

func (o IdealGas) hFromTV(T, v float64) (h, dhdT, dhdv float64, err error) {
	return o.cp * T, o.cp, 0, nil
}

func (o IdealGas) sFromTV(T, v float64) (s, dsdT, dsdv float64, err error) {
	s = o.cv*math.Log(T) + o.rs*math.Log(v)
	return s, o.cv / T, o.rs / v, nil
}
