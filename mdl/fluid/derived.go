// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// derive registers the functions that can be computed from others, if the model
// does not register them itself:
//
//	v_from_p_T    = 1/ρ(p,T)                  derivatives if ρ has derivatives
//	beta_from_p_T = -(1/ρ)・∂ρ/∂T             value only; needs ρ with derivatives
//	e_from_p_T    = e(p, ρ(p,T))              derivatives if ρ and e(p,ρ) have derivatives
func (o *Table) derive() {
	rho, ok := o.f2[RhoFromPT]
	if !ok {
		return
	}

	// v
	if _, ok := o.f2[VFromPT]; !ok {
		var derivs DerivFunc
		if rho.derivs != nil {
			derivs = func(p, T float64) (v, dvdp, dvdT float64, err error) {
				ρ, dρdp, dρdT, err := rho.derivs(p, T)
				if err != nil {
					return
				}
				if ρ == 0 {
					err = chk.Err("density is zero at p=%g, T=%g\n", p, T)
					return
				}
				return 1 / ρ, -dρdp / (ρ * ρ), -dρdT / (ρ * ρ), nil
			}
		}
		o.f2[VFromPT] = entry{func(p, T float64) (float64, error) {
			ρ, err := rho.value(p, T)
			if err != nil {
				return 0, err
			}
			if ρ == 0 {
				return 0, chk.Err("density is zero at p=%g, T=%g\n", p, T)
			}
			return 1 / ρ, nil
		}, derivs}
	}

	// β
	if _, ok := o.f2[BetaFromPT]; !ok && rho.derivs != nil {
		o.f2[BetaFromPT] = entry{func(p, T float64) (float64, error) {
			ρ, _, dρdT, err := rho.derivs(p, T)
			if err != nil {
				return 0, err
			}
			if ρ == 0 {
				return 0, chk.Err("density is zero at p=%g, T=%g\n", p, T)
			}
			return -dρdT / ρ, nil
		}, nil}
	}

	// e
	eprho, ok := o.f2[EFromPRho]
	if _, has := o.f2[EFromPT]; has || !ok {
		return
	}
	var derivs DerivFunc
	if rho.derivs != nil && eprho.derivs != nil {
		derivs = func(p, T float64) (e, dedp, dedT float64, err error) {
			ρ, dρdp, dρdT, err := rho.derivs(p, T)
			if err != nil {
				return
			}
			e, dedpρ, dedρ, err := eprho.derivs(p, ρ)
			if err != nil {
				return
			}
			return e, dedpρ + dedρ*dρdp, dedρ * dρdT, nil
		}
	}
	o.f2[EFromPT] = entry{func(p, T float64) (float64, error) {
		ρ, err := rho.value(p, T)
		if err != nil {
			return 0, err
		}
		return eprho.value(p, ρ)
	}, derivs}
}

// VESpndlFromT computes the specific volume and internal energy on the spinodal
// at temperature T
//
//	v = v_spndl(T)   and   e = e_spndl(v)
func (o *Fluid) VESpndlFromT(T float64) (v, e float64, err error) {
	v, err = o.Value1(VSpndlFromT, T)
	if err != nil {
		return
	}
	e, err = o.Value1(ESpndlFromV, v)
	return
}

// reference temperature of the IAPWS Henry's constant formulation [K]
const henryTc = 647.096

// HenryIAPWS returns Henry's constant of a gas dissolved in water according to
// IAPWS (2004), "Guideline on the Henry's constant and vapour-liquid distribution
// constant for gases in H2O and D2O at high temperatures":
//
//	ln(Kh/psat) = A/Tr + B・τ^0.355/Tr + C・Tr^(-0.41)・exp(τ)
//	Tr = T/647.096   τ = 1 - Tr
//
//	psat -- vapour pressure of water with derivative; its unit is the unit of Kh
//	Note: valid for T < 647.096
func HenryIAPWS(psat DerivFunc1, A, B, C float64) DerivFunc1 {
	return func(T float64) (Kh, dKhdT float64, err error) {
		Tr := T / henryTc
		τ := 1.0 - Tr
		if Tr <= 0 || τ <= 0 {
			err = chk.Err("Henry's constant (IAPWS) requires 0 < T < %g. T=%g is invalid\n", henryTc, T)
			return
		}
		ps, dpsdT, err := psat(T)
		if err != nil {
			return
		}
		lnk := A/Tr + B*math.Pow(τ, 0.355)/Tr + C*math.Pow(Tr, -0.41)*math.Exp(τ)
		dlnkdT := (-A/(Tr*Tr) - B*math.Pow(τ, 0.355)/(Tr*Tr) - 0.355*B*math.Pow(τ, -0.645)/Tr -
			0.41*C*math.Pow(Tr, -1.41)*math.Exp(τ) - C*math.Pow(Tr, -0.41)*math.Exp(τ)) / henryTc
		k := math.Exp(lnk)
		return ps * k, (dpsdT + ps*dlnkdT) * k, nil
	}
}
