// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matfile = "../../inp/data/fluids.mat"

// run executes the root command with args and returns the output
func run(args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	io.Pforan("%s", out.String())
	return out.String(), err
}

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01. commands and flags")

	cmd := newRootCommand()
	for _, name := range []string{"list", "eval", "check", "column"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(tst, err, name)
		chk.String(tst, sub.Name(), name)
		for _, flag := range []string{"mat", "fluid", "model", "strict", "lenient", "metrics"} {
			assert.NotNil(tst, sub.Flags().Lookup(flag), name+": "+flag)
		}
	}
	assert.NotNil(tst, cmd.PersistentFlags().Lookup("verbose"))
	assert.True(tst, cmd.SilenceUsage)
}

func Test_cmd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd02. eval")

	// value and derivatives
	out, err := run("eval", "rho_from_p_T", "101325", "300", "--model", "ideal-gas", "--derivs")
	require.NoError(tst, err)
	fld, err := fluid.Alloc("ideal-gas", "ideal-gas", new(fluid.IdealGas).GetPrms(true), fluid.Options{Strict: true})
	require.NoError(tst, err)
	ρ, dρdp, dρdT, err := fld.Derivs(fluid.RhoFromPT, 101325, 300)
	require.NoError(tst, err)
	assert.Contains(tst, out, io.Sf("rho_from_p_T = %g\n", ρ))
	assert.Contains(tst, out, io.Sf("∂rho/∂p = %g\n", dρdp))
	assert.Contains(tst, out, io.Sf("∂rho/∂T = %g\n", dρdT))

	// dual numbers
	out, err = run("eval", "rho_from_p_T", "101325", "300", "--model", "ideal-gas", "--ad", "3")
	require.NoError(tst, err)
	assert.Contains(tst, out, io.Sf("rho_from_p_T = {%g, [%g %g 0]}", ρ, dρdp, dρdT))

	// one argument
	out, err = run("eval", "psat_from_T", "373.15", "--mat", matfile, "--fluid", "water-linear", "--ad", "2")
	require.NoError(tst, err)
	assert.True(tst, strings.HasPrefix(out, "psat_from_T = {"))

	// value only
	out, err = run("eval", "mu_from_p_T", "1e5", "300", "-m", matfile, "-f", "water")
	require.NoError(tst, err)
	chk.String(tst, out, "mu_from_p_T = 0.001\n")
}

func Test_cmd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd03. fallback policy and metrics")

	// lenient from materials file
	out, err := run("eval", "mu_from_p_T", "1e5", "300", "--mat", matfile, "--fluid", "water", "--derivs", "--metrics")
	require.NoError(tst, err)
	assert.Contains(tst, out, "∂mu/∂p = 0\n")
	assert.Contains(tst, out, "warning: water: mu_from_p_T: ")
	assert.Contains(tst, out, "# TYPE gofluid_derivative_fallbacks_total counter\n")
	assert.Contains(tst, out, "# HELP gofluid_derivative_fallbacks_total ")
	assert.Contains(tst, out, `gofluid_derivative_fallbacks_total{func="mu_from_p_T",model="water"} 1`+"\n")

	// overridden by flag
	_, err = run("eval", "mu_from_p_T", "1e5", "300", "--mat", matfile, "--fluid", "water", "--derivs", "--strict")
	assert.ErrorIs(tst, err, fluid.ErrDerivsNotImplemented)

	// strict by default
	_, err = run("eval", "g_from_v_e", "0.8", "2e5", "--model", "ideal-gas", "--derivs")
	assert.ErrorIs(tst, err, fluid.ErrDerivsNotImplemented)
	out, err = run("eval", "g_from_v_e", "0.8", "2e5", "--model", "ideal-gas", "--derivs", "--lenient")
	require.NoError(tst, err)
	assert.Contains(tst, out, "warning: ideal-gas: g_from_v_e: ")
}

func Test_cmd04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd04. check and list")

	out, err := run("check", "rho_from_p_T", "101325", "300", "--model", "ideal-gas")
	require.NoError(tst, err)
	chk.Int(tst, "number of OK", strings.Count(out, " OK\n"), 2)

	out, err = run("check", "psat_from_T", "350", "--mat", matfile, "--fluid", "water-linear")
	require.NoError(tst, err)
	chk.Int(tst, "number of OK", strings.Count(out, " OK\n"), 1)

	out, err = run("list")
	require.NoError(tst, err)
	assert.Contains(tst, out, "models: ideal-gas linear poly stiffened-gas\n")
	assert.Contains(tst, out, "  psat_from_T\n")
	assert.Contains(tst, out, "  molar_mass\n")

	out, err = run("list", "--mat", matfile, "--fluid", "water")
	require.NoError(tst, err)
	assert.Contains(tst, out, "fluid: water (stiffened-gas, lenient)\n")
	assert.Contains(tst, out, io.Sf("  %-16s%s\n", "mu_from_p_T", "value"))
	assert.Contains(tst, out, io.Sf("  %-16s%s\n", "rho_from_p_T", "value derivs"))
	assert.NotContains(tst, out, "psat_from_T")
	assert.Contains(tst, out, "molar_mass")
}

func Test_cmd05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd05. column")

	out, err := run("column", "--model", "ideal-gas", "--T", "300", "--H", "100", "--np", "3")
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	chk.Int(tst, "number of lines", len(lines), 4)
	assert.Contains(tst, lines[3], "100.0000")

	_, err = run("column", "--model", "ideal-gas", "--np", "1")
	require.Error(tst, err)

	// incompressible
	_, err = run("column", "--mat", matfile, "--fluid", "water-transport")
	require.Error(tst, err)
}

func Test_cmd06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd06. failures")

	_, err := run("eval", "rho_from_p_T", "1", "2")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_T_p", "1", "2", "--model", "ideal-gas")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "one", "2", "--model", "ideal-gas")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "1", "2", "--model", "ideal-gas", "--strict", "--lenient")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "1", "2", "--model", "ideal-gas", "--ad", "1")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "1e5", "300", "--mat", matfile)
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "1e5", "300", "--mat", matfile, "--fluid", "oil")
	require.Error(tst, err)

	_, err = run("eval", "rho_from_p_T", "1e5", "300", "--model", "tabulated")
	require.Error(tst, err)

	_, err = run("eval", "psat_from_T", "300", "--model", "ideal-gas")
	assert.ErrorIs(tst, err, fluid.ErrValueNotImplemented)
}
