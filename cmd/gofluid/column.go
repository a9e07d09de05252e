// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gofluid/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

// columnOptions holds the flags of the column command
type columnOptions struct {
	fluidOptions
	p0   float64 // pressure @ top
	temp float64 // temperature
	grav float64 // gravity
	H    float64 // height
	np   int     // number of points
}

// newColumnCommand computes the pressure along a column of fluid
func newColumnCommand(root *rootOptions) *cobra.Command {
	o := new(columnOptions)
	cmd := &cobra.Command{
		Use:   "column",
		Short: "pressure and density along a column of fluid",
		Long: `Computes pressure and density along a vertical column of fluid with
constant temperature, from z=0 (bottom) to z=H (top, where p=p0). The
analytical solution linearises the density about p0; the numerical solution
integrates dp/dz = -ρ(p,T)・g with the fluid's rho_from_p_T.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.np < 2 {
				return chk.Err("--np must be at least 2. %d is invalid", o.np)
			}
			s, err := newSession(&o.fluidOptions, root.verbose)
			if err != nil {
				return err
			}
			col, err := ana.NewColumnFromFluid(s.fld, o.p0, o.temp, o.grav, o.H)
			if err != nil {
				return err
			}
			Z, Pana, Rana, err := col.Profile(o.np, false)
			if err != nil {
				return err
			}
			_, Pnum, Rnum, err := col.Profile(o.np, true)
			if err != nil {
				return err
			}
			cmd.Printf("%10s%16s%16s%16s%16s\n", "z", "p(lin)", "rho(lin)", "p(num)", "rho(num)")
			for i, z := range Z {
				cmd.Printf("%10.4f%16.6e%16.6e%16.6e%16.6e\n", z, Pana[i], Rana[i], Pnum[i], Rnum[i])
			}
			return s.summary(cmd, o.metrics)
		},
	}
	addFluidFlags(cmd, &o.fluidOptions)
	cmd.Flags().Float64Var(&o.p0, "p0", 101325, "pressure at the top of the column")
	cmd.Flags().Float64Var(&o.temp, "T", 293.15, "temperature of the fluid")
	cmd.Flags().Float64Var(&o.grav, "grav", 9.81, "gravity acceleration")
	cmd.Flags().Float64Var(&o.H, "H", 10, "height of the column")
	cmd.Flags().IntVar(&o.np, "np", 11, "number of points")
	return cmd
}
