// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

// checkOptions holds the flags of the check command
type checkOptions struct {
	fluidOptions
	tol  float64 // tolerance for the comparison
	hrel float64 // relative step of finite differences
}

// newCheckCommand compares analytical derivatives with finite differences
func newCheckCommand(root *rootOptions) *cobra.Command {
	o := new(checkOptions)
	cmd := &cobra.Command{
		Use:   "check FUNC A [B]",
		Short: "compare analytical derivatives with finite differences",
		Long: `Computes the derivatives of a property function with its derivative form
and with the five-point central difference formula applied to its value form.
The differences are divided by max(|analytical|, 1) before being compared
with --tol. Fails if any difference is larger than --tol.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			s, err := newSession(&o.fluidOptions, root.verbose)
			if err != nil {
				return err
			}
			var names []string
			var ana, num []float64
			if len(x) == 1 {
				d, err := fluid.ParseDesc1(args[0])
				if err != nil {
					return err
				}
				_, dvda, err := s.fld.Derivs1(d, x[0])
				if err != nil {
					return err
				}
				dnum, err := fluid.NumDerivs1(s.fld, d, x[0], o.hrel)
				if err != nil {
					return err
				}
				names = []string{"d" + d.Want + "/d" + d.A}
				ana, num = []float64{dvda}, []float64{dnum}
			} else {
				d, err := fluid.ParseDesc(args[0])
				if err != nil {
					return err
				}
				_, dvda, dvdb, err := s.fld.Derivs(d, x[0], x[1])
				if err != nil {
					return err
				}
				dnuma, dnumb, err := fluid.NumDerivs(s.fld, d, x[0], x[1], o.hrel)
				if err != nil {
					return err
				}
				names = []string{"∂" + d.Want + "/∂" + d.A, "∂" + d.Want + "/∂" + d.B}
				ana, num = []float64{dvda, dvdb}, []float64{dnuma, dnumb}
			}
			failed := 0
			for i := range ana {
				diff := math.Abs(ana[i]-num[i]) / math.Max(math.Abs(ana[i]), 1)
				status := "OK"
				if diff > o.tol {
					status = "FAIL"
					failed++
				}
				cmd.Printf("%-12s ana=%23.15e num=%23.15e diff=%8.2e %s\n", names[i], ana[i], num[i], diff, status)
			}
			err = s.summary(cmd, o.metrics)
			if err != nil {
				return err
			}
			if failed > 0 {
				return chk.Err("%d derivative(s) of %s do not match finite differences with tol=%g", failed, args[0], o.tol)
			}
			return nil
		},
	}
	addFluidFlags(cmd, &o.fluidOptions)
	cmd.Flags().Float64Var(&o.tol, "tol", 1e-6, "tolerance for the relative difference")
	cmd.Flags().Float64Var(&o.hrel, "hrel", 1e-5, "finite difference step relative to each argument")
	return cmd
}
