// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/spf13/cobra"
)

// newListCommand lists models and property functions
func newListCommand(root *rootOptions) *cobra.Command {
	o := new(fluidOptions)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list models and property functions",
		Long: `Without flags, lists all models and all property functions.
With --mat or --model, lists the functions implemented by the fluid, marking
those that also implement derivatives, and its constants.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.mat == "" && o.model == "" {
				cmd.Printf("models: %s\n", strings.Join(fluid.Kinds(), " "))
				cmd.Printf("functions:\n")
				for _, d := range fluid.Descs {
					cmd.Printf("  %s\n", d)
				}
				for _, d := range fluid.Descs1 {
					cmd.Printf("  %s\n", d)
				}
				cmd.Printf("constants:\n")
				for _, c := range fluid.Consts {
					cmd.Printf("  %s\n", c)
				}
				return nil
			}
			s, err := newSession(o, root.verbose)
			if err != nil {
				return err
			}
			return list(cmd, s.fld)
		},
	}
	addFluidFlags(cmd, o)
	return cmd
}

// list prints what fld implements
func list(cmd *cobra.Command, fld *fluid.Fluid) error {
	policy := "strict"
	if !fld.Strict() {
		policy = "lenient"
	}
	cmd.Printf("fluid: %s (%s, %s)\n", fld.Name, fluidName(fld), policy)
	cmd.Printf("functions:\n")
	for _, d := range fld.Implemented() {
		cmd.Printf("  %-16s%s\n", d, mark(fld.HasDerivs(d)))
	}
	for _, d := range fluid.Descs1 {
		if fld.Supports1(d) {
			cmd.Printf("  %-16s%s\n", d, mark(fld.HasDerivs1(d)))
		}
	}
	cmd.Printf("constants:\n")
	for _, c := range fluid.Consts {
		if v, err := fld.Const(c); err == nil {
			cmd.Printf("  %-26s%g\n", c, v)
		}
	}
	return nil
}

// fluidName returns the name given by the model or "?"
func fluidName(fld *fluid.Fluid) string {
	name, err := fld.FluidName()
	if err != nil {
		return "?"
	}
	return name
}

// mark indicates whether derivatives are available
func mark(derivs bool) string {
	if derivs {
		return "value derivs"
	}
	return "value"
}
