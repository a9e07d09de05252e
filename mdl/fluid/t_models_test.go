// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gofluid/diag"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// args returns a suitable pair of arguments for d
func args(d Desc, p, T, v, e float64, m *Fluid) (a, b float64) {
	get := func(name string) float64 {
		switch name {
		case "p":
			return p
		case "T":
			return T
		case "v":
			return v
		case "e":
			return e
		case "rho":
			return 1 / v
		case "h":
			h, _ := m.Value(HFromPT, p, T)
			return h
		case "s":
			s, _ := m.Value(SFromPT, p, T)
			return s
		}
		chk.Panic("cannot find argument %q", name)
		return 0
	}
	return get(d.A), get(d.B)
}

// checkAll checks all functions with derivative forms
func checkAll(tst *testing.T, fld *Fluid, p, T, v, e, tol float64, verbose bool) {
	for _, d := range fld.Implemented() {
		if !fld.HasDerivs(d) {
			continue
		}
		a, b := args(d, p, T, v, e, fld)
		io.Pf("%-16s a=%-12g b=%-12g\n", d, a, b)
		CheckDerivs(tst, fld, d, a, b, tol, 1e-6, verbose)
		CheckAD(tst, fld, d, a, b)
	}
}

func Test_idealgas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas01. air")

	fld, err := Alloc("air", "ideal-gas", new(IdealGas).GetPrms(true), Options{Strict: true})
	require.NoError(tst, err)

	p, T := 101325.0, 300.0
	ρ, err := fld.Value(RhoFromPT, p, T)
	require.NoError(tst, err)
	rs := Rgas / 0.029
	chk.Float64(tst, "ρ", 1e-12, ρ, p/(rs*T))

	// consistency between (v,e) and (p,T)
	v, e := 1/ρ, rs/0.4*T
	pp, err := fld.Value(PFromVE, v, e)
	require.NoError(tst, err)
	chk.Float64(tst, "p(v,e)", 1e-9, pp, p)
	TT, err := fld.Value(TFromVE, v, e)
	require.NoError(tst, err)
	chk.Float64(tst, "T(v,e)", 1e-12, TT, T)
	s1, _ := fld.Value(SFromVE, v, e)
	s2, _ := fld.Value(SFromPT, p, T)
	chk.Float64(tst, "s(v,e) = s(p,T)", 1e-9, s1, s2)
	h, _ := fld.Value(HFromPT, p, T)
	ps, err := fld.Value(PFromHS, h, s2)
	require.NoError(tst, err)
	chk.Float64(tst, "p(h,s)", 1e-6, ps, p)
	ρs, _ := fld.Value(RhoFromPS, p, s2)
	chk.Float64(tst, "ρ(p,s)", 1e-12, ρs, ρ)

	// derivatives
	checkAll(tst, fld, p, T, v, e, 1e-6, chk.Verbose)

	// constants and name
	M, err := fld.Const(MolarMass)
	require.NoError(tst, err)
	chk.Float64(tst, "M", 1e-17, M, 0.029)
	name, err := fld.FluidName()
	require.NoError(tst, err)
	chk.String(tst, name, "ideal-gas")

	// value-only functions fail in strict mode
	_, _, _, err = fld.Derivs(GFromVE, v, e)
	assert.ErrorIs(tst, err, ErrDerivsNotImplemented)
	_, err = fld.Value(GFromVE, v, e)
	require.NoError(tst, err)

	// errors from the correlation itself
	_, err = fld.Value(CFromVE, v, -1)
	require.Error(tst, err)
}

func Test_idealgas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas02. parameters")

	_, err := Alloc("bad", "ideal-gas", dbf.Params{&dbf.P{N: "gamma", V: 1.0}}, Options{})
	require.Error(tst, err)
	_, err = Alloc("bad", "ideal-gas", dbf.Params{&dbf.P{N: "molar_mass", V: -1}}, Options{})
	require.Error(tst, err)
	_, err = Alloc("bad", "ideal-gas", dbf.Params{&dbf.P{N: "Rs", V: 287}}, Options{})
	require.Error(tst, err)

	fld, err := Alloc("argon", "ideal-gas", dbf.Params{
		&dbf.P{N: "gamma", V: 5.0 / 3.0},
		&dbf.P{N: "molar_mass", V: 0.039948},
	}, Options{})
	require.NoError(tst, err)
	cp, _ := fld.Value(CpFromPT, 1e5, 300)
	cv, _ := fld.Value(CvFromPT, 1e5, 300)
	chk.Float64(tst, "cp-cv", 1e-12, cp-cv, Rgas/0.039948)
	chk.Float64(tst, "cp/cv", 1e-14, cp/cv, 5.0/3.0)

	prms := fld.Model.GetPrms(false)
	chk.Float64(tst, "gamma", 1e-17, prms.Find("gamma").V, 5.0/3.0)
	chk.Float64(tst, "mu (default)", 1e-17, prms.Find("mu").V, 18.23e-6)
}

func Test_stiffened01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stiffened01. water")

	var rec diag.Recorder
	fld, err := Alloc("water", "stiffened-gas", new(StiffenedGas).GetPrms(true), Options{Sink: &rec})
	require.NoError(tst, err)

	p, T := 1.0e5, 300.0
	ρ, _ := fld.Value(RhoFromPT, p, T)
	v := 1 / ρ
	e, _ := fld.Value(EFromPT, p, T)
	io.Pforan("ρ = %v  e = %v\n", ρ, e)

	// round trip
	pp, err := fld.Value(PFromVE, v, e)
	require.NoError(tst, err)
	chk.Float64(tst, "p(v(p,T),e(p,T))", 1e-4, pp, p)
	TT, _ := fld.Value(TFromVE, v, e)
	chk.Float64(tst, "T(v(p,T),e(p,T))", 1e-9, TT, T)
	ee, _ := fld.Value(EFromPRho, p, ρ)
	chk.Float64(tst, "e(p,ρ)", 1e-6, ee, e)
	c, err := fld.Value(CFromVE, v, e)
	require.NoError(tst, err)
	assert.True(tst, c > 1000 && c < 3000)

	checkAll(tst, fld, p, T, v, e, 1e-6, chk.Verbose)
	chk.Int(tst, "no warnings while checking", rec.Len(), 0)

	// lenient fallback on value-only functions
	_, dedp, dedT, err := fld.Derivs(EFromPT, p, T)
	require.NoError(tst, err)
	chk.Float64(tst, "dedp", 1e-17, dedp, 0)
	chk.Float64(tst, "dedT", 1e-17, dedT, 0)
	chk.Int(tst, "one warning", rec.Len(), 1)

	_, err = Alloc("bad", "stiffened-gas", dbf.Params{&dbf.P{N: "gamma", V: 2}}, Options{})
	require.Error(tst, err)
}

func Test_linear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear01. water")

	fld, err := Alloc("water", "linear", new(Linear).GetPrms(true), Options{Strict: true})
	require.NoError(tst, err)

	// reference state
	R, dRdp, dRdT, err := fld.Derivs(RhoFromPT, 0, 293.15)
	require.NoError(tst, err)
	chk.Float64(tst, "R0", 1e-17, R, 1.0)
	chk.Float64(tst, "C", 1e-17, dRdp, 4.53e-7)
	chk.Float64(tst, "-R0・α", 1e-17, dRdT, -2.07e-4)

	// derivatives
	for _, p := range utl.LinSpace(-50, 500, 5) {
		for _, T := range utl.LinSpace(280, 360, 3) {
			for _, d := range []Desc{RhoFromPT, VFromPT, BetaFromPT, EFromPT, HFromPT} {
				CheckDerivs(tst, fld, d, p, T, 1e-6, 1e-6, chk.Verbose)
				CheckAD(tst, fld, d, p, T)
			}
		}
	}

	// vapour pressure at 100 °C is about one atmosphere
	ps, err := fld.Value1(PsatFromT, 373.15)
	require.NoError(tst, err)
	chk.Float64(tst, "psat(100 °C)", 1.0, ps, 101.325)
	Ts, err := fld.Value1(TsatFromP, ps)
	require.NoError(tst, err)
	chk.Float64(tst, "Tsat(psat)", 1e-9, Ts, 373.15)
	for _, T := range []float64{280, 320, 373.15} {
		CheckDerivs1(tst, fld, PsatFromT, T, 1e-6, 1e-6, chk.Verbose)
	}
	CheckDerivs1(tst, fld, TsatFromP, 50, 1e-6, 1e-6, chk.Verbose)

	// one-argument dual numbers
	X, err := fld.AD1(PsatFromT, ad.Var(350, 2, 0))
	require.NoError(tst, err)
	_, dps, _ := fld.Derivs1(PsatFromT, 350)
	chk.Array(tst, "dpsat", 1e-15, X.D, []float64{dps, 0})

	// failures
	_, err = fld.Value1(TsatFromP, -1)
	require.Error(tst, err)
	_, err = fld.Value1(HenryFromT, 300)
	assert.ErrorIs(tst, err, ErrValueNotImplemented)
	_, err = fld.Value(VFromPT, -1e7, 293.15)
	require.Error(tst, err)
}

func Test_linear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear02. dry air")

	mdl := &Linear{Gas: true}
	prms := mdl.GetPrms(true)
	fld, err := Alloc("air", "linear", prms, Options{Strict: true})
	require.NoError(tst, err)
	name, _ := fld.FluidName()
	chk.String(tst, name, "linear-gas")
	assert.False(tst, fld.Supports1(PsatFromT))
	chk.Float64(tst, "R0", 1e-17, prms.Find("R0").V, 0.0012)

	_, err = Alloc("bad", "linear", dbf.Params{&dbf.P{N: "R0", V: 0}}, Options{})
	require.Error(tst, err)
	_, err = Alloc("bad", "linear", dbf.Params{&dbf.P{N: "RhoL0", V: 1}}, Options{})
	require.Error(tst, err)
}

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01. transport properties of water")

	var rec diag.Recorder
	fld, err := Alloc("water", "poly", new(Poly).GetPrms(true), Options{Sink: &rec})
	require.NoError(tst, err)

	// reference values
	k, err := fld.Value(KFromPT, 101325, 293.15)
	require.NoError(tst, err)
	chk.Float64(tst, "k(pref,Tref)", 1e-17, k, 0.598)
	μ, err := fld.Value(MuFromPT, 101325, 293.15)
	require.NoError(tst, err)
	chk.Float64(tst, "μ(pref,Tref)", 1e-17, μ, 1.002e-3)

	// derivatives
	for _, T := range []float64{280, 293.15, 330} {
		for _, d := range []Desc{KFromPT, MuFromPT} {
			CheckDerivs(tst, fld, d, 2e5, T, 1e-6, 1e-6, chk.Verbose)
			CheckAD(tst, fld, d, 2e5, T)
		}
	}

	// (ρ,T) forms have no derivatives
	k1, _ := fld.Value(KFromRhoT, 998, 330)
	k2, _ := fld.Value(KFromPT, 101325, 330)
	chk.Float64(tst, "k(ρ,T)", 1e-15, k1, k2)
	_, dkdρ, dkdT, err := fld.Derivs(KFromRhoT, 998, 330)
	require.NoError(tst, err)
	assert.Equal(tst, 0.0, dkdρ)
	assert.Equal(tst, 0.0, dkdT)
	chk.Int(tst, "warnings", rec.Len(), 1)

	// either set of coefficients is enough
	fld, err = Alloc("k-only", "poly", dbf.Params{
		&dbf.P{N: "a0", V: 1}, &dbf.P{N: "a1", V: 0}, &dbf.P{N: "a2", V: 0}, &dbf.P{N: "a3", V: 0},
	}, Options{})
	require.NoError(tst, err)
	μ, _ = fld.Value(MuFromPT, 1, 1)
	chk.Float64(tst, "μ (not given)", 1e-17, μ, 0)

	_, err = Alloc("bad", "poly", dbf.Params{&dbf.P{N: "a0", V: 1}}, Options{})
	require.Error(tst, err)
	_, err = Alloc("bad", "poly", append(new(Poly).GetPrms(true), &dbf.P{N: "x", V: 1}), Options{})
	require.Error(tst, err)
}

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. round trip of parameters")

	for _, kind := range Kinds() {
		mdl, err := NewModel(kind)
		require.NoError(tst, err)
		prms := mdl.GetPrms(true)
		require.NoError(tst, mdl.Init(prms), kind)
		again := mdl.GetPrms(false)
		for _, p := range prms {
			q := again.Find(p.N)
			if q == nil {
				tst.Errorf("%s: parameter %q is missing\n", kind, p.N)
				continue
			}
			if math.Abs(q.V-p.V) > 1e-15 {
				tst.Errorf("%s: parameter %q is %g instead of %g\n", kind, p.N, q.V, p.V)
			}
		}
	}
}

func Test_numderivs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("numderivs01. five-point finite differences")

	fld, err := Alloc("air", "ideal-gas", new(IdealGas).GetPrms(true), Options{Strict: true})
	require.NoError(tst, err)

	p, T := 101325.0, 300.0
	_, dρdp, dρdT, err := fld.Derivs(RhoFromPT, p, T)
	require.NoError(tst, err)
	dnuma, dnumb, err := NumDerivs(fld, RhoFromPT, p, T, 1e-4)
	require.NoError(tst, err)
	chk.AnaNum(tst, "∂ρ/∂p", 1e-12, dρdp, dnuma, chk.Verbose)
	chk.AnaNum(tst, "∂ρ/∂T", 1e-10, dρdT, dnumb, chk.Verbose)

	wat, err := Alloc("water", "linear", new(Linear).GetPrms(true), Options{Strict: true})
	require.NoError(tst, err)
	_, dpsdT, err := wat.Derivs1(PsatFromT, 350)
	require.NoError(tst, err)
	dnum, err := NumDerivs1(wat, PsatFromT, 350, 1e-5)
	require.NoError(tst, err)
	chk.AnaNum(tst, "dpsat/dT", 1e-7, dpsdT, dnum, chk.Verbose)

	// errors from the value form are returned
	_, _, err = NumDerivs(fld, PpSatFromPT, p, T, 1e-4)
	assert.ErrorIs(tst, err, ErrValueNotImplemented)
	_, err = NumDerivs1(fld, PsatFromT, T, 1e-4)
	assert.ErrorIs(tst, err, ErrValueNotImplemented)

	// stencil reaching outside the domain
	fix := newFixed(false, true, nil)
	_, _, err = NumDerivs(fix, PFromVE, 0.001, 2.0e6, 1e-4)
	require.NoError(tst, err)
	_, _, err = NumDerivs(fix, PFromVE, 0.001, 2.0e6, 0.6)
	require.Error(tst, err)
	_, err = NumDerivs1(fix, PsatFromT, 300, 0.6)
	require.Error(tst, err)

	// linear density: exact up to round-off
	dnuma, dnumb, err = NumDerivs(wat, RhoFromPT, 100, 300, 1e-3)
	require.NoError(tst, err)
	chk.AnaNum(tst, "∂ρ/∂p (linear)", 1e-12, 4.53e-7, dnuma, chk.Verbose)
	chk.AnaNum(tst, "∂ρ/∂T (linear)", 1e-12, -2.07e-4, dnumb, chk.Verbose)
}
