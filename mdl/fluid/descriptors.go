// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Desc describes a property function of two arguments: Want = f(A, B)
//
//	Properties and units (SI unless the model says otherwise):
//	 p      pressure [Pa]
//	 T      temperature [K]
//	 e      specific internal energy [J/kg]
//	 v      specific volume [m³/kg]
//	 rho    density [kg/m³]
//	 h      specific enthalpy [J/kg]
//	 s      specific entropy [J/(kg・K)]
//	 mu     viscosity [Pa・s]
//	 k      thermal conductivity [W/(m・K)]
//	 c      speed of sound [m/s]
//	 cp     constant-pressure specific heat [J/(kg・K)]
//	 cv     constant-volume specific heat [J/(kg・K)]
//	 beta   volumetric thermal expansion coefficient [1/K]
//	 g      Gibbs free energy [J/kg]
//	 gamma  ratio of specific heats [-]
//	 pp_sat partial pressure at saturation [Pa]
type Desc struct {
	Want string // computed property
	A    string // first argument
	B    string // second argument
}

// String returns the name of the function; e.g. "p_from_v_e"
func (o Desc) String() string {
	return o.Want + "_from_" + o.A + "_" + o.B
}

// Desc1 describes a property function of one argument: Want = f(A)
type Desc1 struct {
	Want string // computed property
	A    string // argument
}

// String returns the name of the function; e.g. "psat_from_T"
func (o Desc1) String() string {
	return o.Want + "_from_" + o.A
}

// Const names a scalar constant of a fluid
type Const string

// two-argument property functions
var (
	PFromVE     = Desc{"p", "v", "e"}
	TFromVE     = Desc{"T", "v", "e"}
	CFromVE     = Desc{"c", "v", "e"}
	CpFromVE    = Desc{"cp", "v", "e"}
	CvFromVE    = Desc{"cv", "v", "e"}
	MuFromVE    = Desc{"mu", "v", "e"}
	KFromVE     = Desc{"k", "v", "e"}
	SFromVE     = Desc{"s", "v", "e"}
	SFromHP     = Desc{"s", "h", "p"}
	TFromHP     = Desc{"T", "h", "p"}
	RhoFromPS   = Desc{"rho", "p", "s"}
	EFromVH     = Desc{"e", "v", "h"}
	SFromPT     = Desc{"s", "p", "T"}
	PpSatFromPT = Desc{"pp_sat", "p", "T"}
	MuFromRhoT  = Desc{"mu", "rho", "T"}
	KFromRhoT   = Desc{"k", "rho", "T"}
	CFromPT     = Desc{"c", "p", "T"}
	CpFromPT    = Desc{"cp", "p", "T"}
	CvFromPT    = Desc{"cv", "p", "T"}
	MuFromPT    = Desc{"mu", "p", "T"}
	KFromPT     = Desc{"k", "p", "T"}
	RhoFromPT   = Desc{"rho", "p", "T"}
	EFromPRho   = Desc{"e", "p", "rho"}
	EFromTV     = Desc{"e", "T", "v"}
	PFromTV     = Desc{"p", "T", "v"}
	HFromTV     = Desc{"h", "T", "v"}
	SFromTV     = Desc{"s", "T", "v"}
	CvFromTV    = Desc{"cv", "T", "v"}
	HFromPT     = Desc{"h", "p", "T"}
	PFromHS     = Desc{"p", "h", "s"}
	GFromVE     = Desc{"g", "v", "e"}
	BetaFromPT  = Desc{"beta", "p", "T"}
	VFromPT     = Desc{"v", "p", "T"}
	EFromPT     = Desc{"e", "p", "T"}
	TFromPH     = Desc{"T", "p", "h"}
	GammaFromVE = Desc{"gamma", "v", "e"}
	GammaFromPT = Desc{"gamma", "p", "T"}
)

// one-argument property functions
var (
	PsatFromT  = Desc1{"psat", "T"} // vapour (saturation) pressure
	TsatFromP  = Desc1{"Tsat", "p"} // vapour (saturation) temperature
	HenryFromT = Desc1{"Kh", "T"}   // Henry's law constant

	VSpndlFromT = Desc1{"v_spndl", "T"} // specific volume on the spinodal
	ESpndlFromV = Desc1{"e_spndl", "v"} // specific internal energy on the spinodal
)

// constants
const (
	MolarMass              Const = "molar_mass"               // [kg/mol]
	CriticalPressure       Const = "critical_pressure"        // [Pa]
	CriticalTemperature    Const = "critical_temperature"     // [K]
	CriticalDensity        Const = "critical_density"         // [kg/m³]
	CriticalInternalEnergy Const = "critical_internal_energy" // [J/kg]
	TriplePointPressure    Const = "triple_point_pressure"    // [Pa]
	TriplePointTemperature Const = "triple_point_temperature" // [K]
)

// Descs holds all two-argument property functions
var Descs = []Desc{
	PFromVE, TFromVE, CFromVE, CpFromVE, CvFromVE, MuFromVE, KFromVE, SFromVE,
	SFromHP, TFromHP, RhoFromPS, EFromVH, SFromPT, PpSatFromPT, MuFromRhoT, KFromRhoT,
	CFromPT, CpFromPT, CvFromPT, MuFromPT, KFromPT, RhoFromPT, EFromPRho, EFromTV,
	PFromTV, HFromTV, SFromTV, CvFromTV, HFromPT, PFromHS, GFromVE, BetaFromPT,
	VFromPT, EFromPT, TFromPH, GammaFromVE, GammaFromPT,
}

// Descs1 holds all one-argument property functions
var Descs1 = []Desc1{PsatFromT, TsatFromP, HenryFromT, VSpndlFromT, ESpndlFromV}

// Consts holds all constants
var Consts = []Const{
	MolarMass, CriticalPressure, CriticalTemperature, CriticalDensity,
	CriticalInternalEnergy, TriplePointPressure, TriplePointTemperature,
}

// ParseDesc finds a two-argument property function by name; e.g. "rho_from_p_T"
func ParseDesc(name string) (Desc, error) {
	for _, d := range Descs {
		if d.String() == name {
			return d, nil
		}
	}
	return Desc{}, chk.Err("property function %q is not available. e.g. %q", name, suggest(name))
}

// ParseDesc1 finds a one-argument property function by name; e.g. "psat_from_T"
func ParseDesc1(name string) (Desc1, error) {
	for _, d := range Descs1 {
		if d.String() == name {
			return d, nil
		}
	}
	return Desc1{}, chk.Err("property function %q is not available", name)
}

// suggest returns the first function computing the same property as name
func suggest(name string) string {
	want := strings.SplitN(name, "_from_", 2)[0]
	for _, d := range Descs {
		if d.Want == want {
			return d.String()
		}
	}
	return Descs[0].String()
}
