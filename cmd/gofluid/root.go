// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gofluid/diag"
	"github.com/cpmech/gofluid/inp"
	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// rootOptions holds global flags
type rootOptions struct {
	verbose bool
}

// fluidOptions holds the flags selecting a fluid
type fluidOptions struct {
	mat     string // materials file
	name    string // name of fluid in materials file
	model   string // model kind; used with example parameters if mat is empty
	strict  bool   // force strict policy
	lenient bool   // force lenient policy
	metrics bool   // print fallback counters at the end
}

// session holds the fluid being evaluated and its diagnostics
type session struct {
	fld *fluid.Fluid
	rec *diag.Recorder
	reg *prometheus.Registry
}

// newRootCommand creates the root command
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gofluid",
		Short: "fluid properties and their derivatives",
		Long: `Evaluates fluid property functions, such as rho_from_p_T or p_from_v_e,
together with their analytical derivatives and derivatives w.r.t any number
of degrees of freedom (dual numbers).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = opts.verbose
			if opts.verbose {
				io.PfWhite("\nGofluid -- Fluid properties for Gofem\n")
				io.Pf("Use of this source code is governed by a BSD-style\n")
				io.Pf("license that can be found in the LICENSE file.\n\n")
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "show messages")
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newEvalCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newColumnCommand(opts))
	return cmd
}

// addFluidFlags adds the flags selecting a fluid
func addFluidFlags(cmd *cobra.Command, o *fluidOptions) {
	cmd.Flags().StringVarP(&o.mat, "mat", "m", "", "materials file (.mat JSON or .yaml)")
	cmd.Flags().StringVarP(&o.name, "fluid", "f", "", "name of fluid in materials file; may be omitted if there is only one")
	cmd.Flags().StringVar(&o.model, "model", "", "model with example parameters; e.g. ideal-gas. used if --mat is not given")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail if derivatives are not implemented (overrides materials file)")
	cmd.Flags().BoolVar(&o.lenient, "lenient", false, "warn once and use zero derivatives if not implemented (overrides materials file)")
	cmd.Flags().BoolVar(&o.metrics, "metrics", false, "print the counters of derivative fallbacks at the end")
}

// newSession loads the fluid selected by o
func newSession(o *fluidOptions, verbose bool) (s *session, err error) {
	if o.strict && o.lenient {
		return nil, chk.Err("--strict and --lenient cannot be used together")
	}
	s = &session{rec: new(diag.Recorder), reg: prometheus.NewRegistry()}
	counter, err := diag.NewCounter(s.reg)
	if err != nil {
		return
	}
	sink := diag.Multi{s.rec, counter, diag.Printer{Silent: !verbose}}

	// model with example parameters
	var mdl fluid.Model
	var name string
	strict := true
	if o.mat == "" {
		if o.model == "" {
			return nil, chk.Err("either --mat or --model must be given")
		}
		mdl, err = fluid.NewModel(o.model)
		if err != nil {
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			return
		}
		name = o.model

		// fluid from materials file
	} else {
		var mdb *inp.MatDb
		mdb, err = inp.ReadMat(filepath.Dir(o.mat), filepath.Base(o.mat), sink)
		if err != nil {
			return
		}
		name = o.name
		if name == "" {
			names := mdb.FluidNames()
			if len(names) != 1 {
				return nil, chk.Err("--fluid must be given. available: %v", names)
			}
			name = names[0]
		}
		m, ok := mdb.Fluids[name]
		if !ok {
			return nil, chk.Err("cannot find fluid named %q in %q. available: %v", name, o.mat, mdb.FluidNames())
		}
		mdl, strict = m.Fluid.Model, m.Strict
	}

	// policy
	if o.strict {
		strict = true
	}
	if o.lenient {
		strict = false
	}
	s.fld = fluid.New(name, mdl, fluid.Options{Strict: strict, Sink: sink})
	return
}

// summary prints the warnings and, optionally, the metrics
func (o *session) summary(cmd *cobra.Command, metrics bool) error {
	for _, e := range o.rec.Events() {
		cmd.Printf("warning: %s: %s: %s\n", e.Model, e.Func, e.Msg)
	}
	if !metrics {
		return nil
	}
	mfs, err := o.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}
	return nil
}
