// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_colpresfluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid01. pressure on fluid along column")

	R0 := 1.0
	p0 := 0.0
	C := 1e-2
	H := 10.0
	g := 10.0

	var col ColumnFluidPressure
	col.Init(R0, p0, C, g, H)

	tol := 1e-8
	np := 11
	dz := H / float64(np-1)
	io.PfWhite("%8s%14s%14s%14s%14s%23s\n", "z", "pAna", "Rana", "pNum", "Rnum", "errp")
	for i := 0; i < np; i++ {
		z := H - float64(i)*dz
		pAna, Rana := col.Calc(z)
		pNum, Rnum, err := col.CalcNum(z)
		require.NoError(tst, err)
		errp := math.Abs(pAna - pNum)
		io.Pf("%8.4f%14.8f%14.8f%14.8f%14.8f%23.15e\n", z, pAna, Rana, pNum, Rnum, errp)
		chk.AnaNum(tst, "p", tol, pAna, pNum, false)
		chk.AnaNum(tst, "R", tol, Rana, Rnum, false)
	}

	// top and bottom
	p, R := col.Calc(H)
	chk.Float64(tst, "p(H)", 1e-17, p, p0)
	chk.Float64(tst, "R(H)", 1e-17, R, R0)
	p, _ = col.Calc(0)
	chk.Float64(tst, "p(0)", 1e-12, p, (R0/C)*(math.Exp(1)-1))
}

func Test_colpresfluid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid02. column of linear fluid")

	var water Water
	water.Init()
	fld, err := fluid.Alloc("water", "linear", water.Prms(), fluid.Options{Strict: true})
	require.NoError(tst, err)

	col, err := NewColumnFromFluid(fld, 0, water.Θ, 10, 10)
	require.NoError(tst, err)
	chk.Float64(tst, "R0", 1e-17, col.R0, water.Rho)
	chk.Float64(tst, "C", 1e-17, col.C, water.C)

	// the density of the fluid is integrated numerically
	Z, Pana, Rana, err := col.Profile(21, false)
	require.NoError(tst, err)
	_, Pnum, Rnum, err := col.Profile(21, true)
	require.NoError(tst, err)
	for i, z := range Z {
		chk.AnaNum(tst, io.Sf("p(%g)", z), 1e-8, Pana[i], Pnum[i], chk.Verbose)
		chk.AnaNum(tst, io.Sf("R(%g)", z), 1e-12, Rana[i], Rnum[i], chk.Verbose)
	}

	// hydrostatic pressure at the bottom is about ρ・g・H
	chk.Float64(tst, "p(0)", 0.01, Pana[0], water.Rho*10*10)
}

func Test_colpresfluid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid03. column of dry air and failures")

	var air DryAir
	air.Init()
	fld, err := fluid.Alloc("air", "linear", air.Prms(), fluid.Options{Strict: true})
	require.NoError(tst, err)
	col, err := NewColumnFromFluid(fld, 0, air.Θ, 10, 100)
	require.NoError(tst, err)
	p, R, err := col.CalcNum(0)
	require.NoError(tst, err)
	pa, Ra := col.Calc(0)
	chk.AnaNum(tst, "p", 1e-10, pa, p, chk.Verbose)
	chk.AnaNum(tst, "R", 1e-14, Ra, R, chk.Verbose)

	// incompressible fluid
	fld, err = fluid.Alloc("rigid", "linear", dbf.Params{&dbf.P{N: "R0", V: 1}}, fluid.Options{})
	require.NoError(tst, err)
	_, err = NewColumnFromFluid(fld, 0, 300, 10, 10)
	require.Error(tst, err)

	// fluid without density
	fld, err = fluid.Alloc("transport", "poly", nil, fluid.Options{Strict: true})
	require.Error(tst, err)
	fld, err = fluid.Alloc("transport", "poly", new(fluid.Poly).GetPrms(true), fluid.Options{Strict: true})
	require.NoError(tst, err)
	_, err = NewColumnFromFluid(fld, 0, 300, 10, 10)
	require.ErrorIs(tst, err, fluid.ErrValueNotImplemented)
}
