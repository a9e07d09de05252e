// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

// evalOptions holds the flags of the eval command
type evalOptions struct {
	fluidOptions
	derivs bool // also compute derivatives
	ndof   int  // number of degrees of freedom of dual numbers; 0 => no dual numbers
}

// newEvalCommand evaluates a property function
func newEvalCommand(root *rootOptions) *cobra.Command {
	o := new(evalOptions)
	cmd := &cobra.Command{
		Use:   "eval FUNC A [B]",
		Short: "evaluate a property function",
		Long: `Evaluates a property function such as rho_from_p_T (two arguments) or
psat_from_T (one argument). With --derivs, the partial derivatives are also
printed. With --ad N, the arguments are seeded as the first (and second) of N
degrees of freedom and the dual number result is printed.`,
		Example: `  gofluid eval rho_from_p_T 101325 300 --model ideal-gas --derivs
  gofluid eval psat_from_T 373.15 --mat fluids.mat --fluid water-linear --ad 2`,
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
			if len(x) == 1 {
				err = eval1(cmd, s.fld, args[0], x[0], o)
			} else {
				err = eval2(cmd, s.fld, args[0], x[0], x[1], o)
			}
			if err != nil {
				return err
			}
			return s.summary(cmd, o.metrics)
		},
	}
	addFluidFlags(cmd, &o.fluidOptions)
	cmd.Flags().BoolVarP(&o.derivs, "derivs", "d", false, "also compute the partial derivatives")
	cmd.Flags().IntVar(&o.ndof, "ad", 0, "compute with dual numbers carrying N derivatives")
	return cmd
}

// eval2 evaluates a two-argument function
func eval2(cmd *cobra.Command, fld *fluid.Fluid, name string, a, b float64, o *evalOptions) error {
	d, err := fluid.ParseDesc(name)
	if err != nil {
		return err
	}
	switch {
	case o.ndof > 0:
		if o.ndof < 2 {
			return chk.Err("--ad must be at least 2 for a function of two arguments. %d is invalid", o.ndof)
		}
		res, err := fld.AD(d, ad.Var(a, o.ndof, 0), ad.Var(b, o.ndof, 1))
		if err != nil {
			return err
		}
		cmd.Printf("%s = %v\n", d, res)
	case o.derivs:
		v, dvda, dvdb, err := fld.Derivs(d, a, b)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %g\n", d, v)
		cmd.Printf("∂%s/∂%s = %g\n", d.Want, d.A, dvda)
		cmd.Printf("∂%s/∂%s = %g\n", d.Want, d.B, dvdb)
	default:
		v, err := fld.Value(d, a, b)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %g\n", d, v)
	}
	return nil
}

// eval1 evaluates a one-argument function
func eval1(cmd *cobra.Command, fld *fluid.Fluid, name string, a float64, o *evalOptions) error {
	d, err := fluid.ParseDesc1(name)
	if err != nil {
		return err
	}
	switch {
	case o.ndof > 0:
		res, err := fld.AD1(d, ad.Var(a, o.ndof, 0))
		if err != nil {
			return err
		}
		cmd.Printf("%s = %v\n", d, res)
	case o.derivs:
		v, dvda, err := fld.Derivs1(d, a)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %g\n", d, v)
		cmd.Printf("d%s/d%s = %g\n", d.Want, d.A, dvda)
	default:
		v, err := fld.Value1(d, a)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %g\n", d, v)
	}
	return nil
}

// parseArgs converts the arguments of property functions
func parseArgs(args []string) (x []float64, err error) {
	x = make([]float64, len(args))
	for i, s := range args {
		x[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, chk.Err("argument %d of property function must be a number. %q is invalid", i+1, s)
		}
	}
	return
}
