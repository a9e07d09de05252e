// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Linear implements a slightly compressible fluid with linear density:
//
//	 R(p,T) = R0 + C・(p - P0) - R0・α・(T - T0)   thus   ∂R/∂p = C   ∂R/∂T = -R0・α
//	 e(T)   = cv・(T - T0)
//
//	Units follow the porous media models: p in kPa, R in Mg/m³.
//	Optionally, the vapour pressure is computed with Antoine's equation:
//
//	 log10(psat) = A - B/(Cant + T)
//
//	and, if also given, Henry's constant of a dissolved gas with HenryIAPWS.
type Linear struct {

	// material data
	R0  float64 // intrinsic density corresponding to P0 and T0
	P0  float64 // pressure corresponding to R0
	T0  float64 // temperature corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	α   float64 // volumetric thermal expansion coefficient
	Cv  float64 // specific heat
	Mu  float64 // viscosity
	K   float64 // thermal conductivity
	Gas bool    // is gas instead of liquid?

	// Antoine's coefficients (optional)
	antA, antB, antC float64

	// IAPWS coefficients of Henry's constant (optional)
	henA, henB, henC float64
	henry            bool
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
}

// Init initialises this structure
func (o *Linear) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "T0":
			o.T0 = p.V
		case "C":
			o.C = p.V
		case "alp":
			o.α = p.V
		case "cv":
			o.Cv = p.V
		case "mu":
			o.Mu = p.V
		case "k":
			o.K = p.V
		case "gas", "Gas":
			o.Gas = p.V > 0
		case "antA":
			o.antA = p.V
		case "antB":
			o.antB = p.V
		case "antC":
			o.antC = p.V
		case "henA":
			o.henA, o.henry = p.V, true
		case "henB":
			o.henB, o.henry = p.V, true
		case "henC":
			o.henC, o.henry = p.V, true
		default:
			return chk.Err("linear: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("linear: R0 must be positive. %g is invalid\n", o.R0)
	}
	if o.henry && o.antB == 0 {
		return chk.Err("linear: Henry's constant requires Antoine's coefficients\n")
	}
	return
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters; othewise returs current parameters
//	Note:
//	 Gas variable is used to return dry air properties instead of water
func (o Linear) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 0.0012}, // [Mg/m³]
				&dbf.P{N: "P0", V: 0.0},    // [kPa]
				&dbf.P{N: "T0", V: 293.15}, // [K]
				&dbf.P{N: "C", V: 1.17e-5}, // [Mg/(m³・kPa)]
				&dbf.P{N: "alp", V: 0},     // [1/K]
				&dbf.P{N: "cv", V: 0.718},  // [kJ/(kg・K)]
				&dbf.P{N: "mu", V: 1.8e-8}, // [kPa・s]
				&dbf.P{N: "k", V: 0.026},   // [W/(m・K)]
				&dbf.P{N: "Gas", V: 1},     // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1.0},       // [Mg/m³]
			&dbf.P{N: "P0", V: 0.0},       // [kPa]
			&dbf.P{N: "T0", V: 293.15},    // [K]
			&dbf.P{N: "C", V: 4.53e-7},    // [Mg/(m³・kPa)]
			&dbf.P{N: "alp", V: 2.07e-4},  // [1/K]
			&dbf.P{N: "cv", V: 4.18},      // [kJ/(kg・K)]
			&dbf.P{N: "mu", V: 1.0e-6},    // [kPa・s]
			&dbf.P{N: "k", V: 0.6},        // [W/(m・K)]
			&dbf.P{N: "Gas", V: 0},        // [-]
			&dbf.P{N: "antA", V: 7.19621}, // psat in kPa, T in K
			&dbf.P{N: "antB", V: 1730.63}, //
			&dbf.P{N: "antC", V: -39.724}, //
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	res := dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "cv", V: o.Cv},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "Gas", V: gas},
		&dbf.P{N: "antA", V: o.antA},
		&dbf.P{N: "antB", V: o.antB},
		&dbf.P{N: "antC", V: o.antC},
	}
	if o.henry {
		res = append(res,
			&dbf.P{N: "henA", V: o.henA},
			&dbf.P{N: "henB", V: o.henB},
			&dbf.P{N: "henC", V: o.henC},
		)
	}
	return res
}

// Funcs registers property functions
func (o *Linear) Funcs(tab *Table) {
	if o.Gas {
		tab.SetName("linear-gas")
	} else {
		tab.SetName("linear-liquid")
	}
	tab.Set(RhoFromPT, val(o.rhoFromPT), o.rhoFromPT)
	tab.Set(VFromPT, val(o.vFromPT), o.vFromPT)
	tab.Set(BetaFromPT, val(o.betaFromPT), o.betaFromPT)
	tab.Set(EFromPT, val(o.eFromPT), o.eFromPT)
	tab.Set(HFromPT, val(o.hFromPT), o.hFromPT)
	tab.Set(CvFromPT, cte(o.Cv), zero(o.Cv))
	tab.Set(MuFromPT, cte(o.Mu), zero(o.Mu))
	tab.Set(KFromPT, cte(o.K), zero(o.K))
	if o.antB != 0 {
		tab.Set1(PsatFromT, val1(o.psat), o.psat)
		tab.Set1(TsatFromP, val1(o.tsat), o.tsat)
	}
	if o.henry {
		kh := HenryIAPWS(o.psat, o.henA, o.henB, o.henC)
		tab.Set1(HenryFromT, val1(kh), kh)
	}
}

func (o Linear) rhoFromPT(p, T float64) (R, dRdp, dRdT float64, err error) {
	R = o.R0 + o.C*(p-o.P0) - o.R0*o.α*(T-o.T0)
	return R, o.C, -o.R0 * o.α, nil
}

func (o Linear) vFromPT(p, T float64) (v, dvdp, dvdT float64, err error) {
	R, dRdp, dRdT, _ := o.rhoFromPT(p, T)
	if R <= 0 {
		err = chk.Err("linear: density became non-positive (R=%g) at p=%g, T=%g\n", R, p, T)
		return
	}
	v = 1 / R
	return v, -dRdp / (R * R), -dRdT / (R * R), nil
}

// betaFromPT computes β = -(1/R)・∂R/∂T
func (o Linear) betaFromPT(p, T float64) (β, dβdp, dβdT float64, err error) {
	R, dRdp, dRdT, _ := o.rhoFromPT(p, T)
	a := o.R0 * o.α
	β = a / R
	return β, -a * dRdp / (R * R), -a * dRdT / (R * R), nil
}

func (o Linear) eFromPT(p, T float64) (e, dedp, dedT float64, err error) {
	return o.Cv * (T - o.T0), 0, o.Cv, nil
}

// hFromPT computes h = e + p/R
func (o Linear) hFromPT(p, T float64) (h, dhdp, dhdT float64, err error) {
	v, dvdp, dvdT, err := o.vFromPT(p, T)
	if err != nil {
		return
	}
	e, _, dedT, _ := o.eFromPT(p, T)
	return e + p*v, v + p*dvdp, dedT + p*dvdT, nil
}

func (o Linear) psat(T float64) (ps, dpsdT float64, err error) {
	den := o.antC + T
	if den <= 0 {
		err = chk.Err("linear: Antoine equation is invalid for T=%g\n", T)
		return
	}
	ps = math.Pow(10, o.antA-o.antB/den)
	return ps, ps * math.Ln10 * o.antB / (den * den), nil
}

func (o Linear) tsat(p float64) (Ts, dTsdp float64, err error) {
	if p <= 0 {
		err = chk.Err("linear: saturation temperature requires positive pressure. p=%g is invalid\n", p)
		return
	}
	x := o.antA - math.Log10(p)
	Ts = o.antB/x - o.antC
	return Ts, o.antB / (x * x * p * math.Ln10), nil
}
