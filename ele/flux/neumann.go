// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"context"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gofluid/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CoupledNeumannBC implements a Neumann boundary condition whose flux is
// proportional to a coupled fluid property:
//
//	r_i = - Σ_qp w・value(t,x)・c(p,T)・S_i        e.g. c = ρ(p,T)
//
//	value(t,x) = Value・Fcn(t,x)   or   Value if Fcn == nil
type CoupledNeumannBC struct {
	Value   float64    // multiplier on the boundary
	Fcn     dbf.T      // [optional] time-space function multiplying Value
	Coupled fluid.Func // coupled property; e.g. rho_from_p_T
	Config  Config     // parallel loop
}

// NewCoupledNeumannBC returns a new structure with default parallel configuration
func NewCoupledNeumannBC(value float64, fcn dbf.T, coupled fluid.Func) *CoupledNeumannBC {
	return &CoupledNeumannBC{Value: value, Fcn: fcn, Coupled: coupled, Config: DefaultConfig()}
}

// Residual computes the residual of the nverts nodes of a face @ time t
func (o CoupledNeumannBC) Residual(ctx context.Context, t float64, pts []Point, nverts int) (r []float64, err error) {
	ranges := o.Config.chunks(len(pts))
	partial := make([][]float64, len(ranges))
	err = o.Config.run(ctx, ranges, func(ctx context.Context, c, lo, hi int) error {
		partial[c] = make([]float64, nverts)
		for k := lo; k < hi; k++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			pt := pts[k]
			if len(pt.S) != nverts {
				return chk.Err("point %d: number of shape functions must be equal to %d. %d is incorrect", k, nverts, len(pt.S))
			}
			v, err := o.Coupled.Value(pt.P, pt.T)
			if err != nil {
				return err
			}
			coef := pt.W * o.value(t, pt.X) * v
			for i, s := range pt.S {
				partial[c][i] -= coef * s
			}
		}
		return nil
	})
	if err != nil {
		return
	}
	r = make([]float64, nverts)
	for _, p := range partial {
		for i := range r {
			r[i] += p[i]
		}
	}
	return
}

// ResidualAD computes the residual and the Jacobian (derivatives of r_i w.r.t the
// n degrees of freedom) of the nverts nodes of a face @ time t
func (o CoupledNeumannBC) ResidualAD(ctx context.Context, t float64, pts []PointAD, nverts, n int) (r []ad.Dual, err error) {
	ranges := o.Config.chunks(len(pts))
	partial := make([][]ad.Dual, len(ranges))
	err = o.Config.run(ctx, ranges, func(ctx context.Context, c, lo, hi int) error {
		partial[c] = zeros(nverts, n)
		for k := lo; k < hi; k++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			pt := pts[k]
			if len(pt.S) != nverts {
				return chk.Err("point %d: number of shape functions must be equal to %d. %d is incorrect", k, nverts, len(pt.S))
			}
			v, err := o.Coupled.AD(pt.P, pt.T)
			if err != nil {
				return err
			}
			coef := ad.Scale(pt.W*o.value(t, pt.X), v)
			for i, s := range pt.S {
				partial[c][i], err = ad.Sub(partial[c][i], ad.Scale(s, coef))
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return
	}
	r = zeros(nverts, n)
	for _, p := range partial {
		for i := range r {
			r[i], err = ad.Add(r[i], p[i])
			if err != nil {
				return
			}
		}
	}
	return
}

// Jacobian extracts the Jacobian matrix from the result of ResidualAD
func Jacobian(r []ad.Dual) (K [][]float64) {
	K = make([][]float64, len(r))
	for i, ri := range r {
		K[i] = make([]float64, len(ri.D))
		copy(K[i], ri.D)
	}
	return
}

// value returns the multiplier @ (t,x)
func (o CoupledNeumannBC) value(t float64, x []float64) float64 {
	if o.Fcn == nil {
		return o.Value
	}
	return o.Value * o.Fcn.F(t, x)
}

// zeros allocates m duals with n derivatives
func zeros(m, n int) []ad.Dual {
	res := make([]ad.Dual, m)
	for i := range res {
		res[i] = ad.New(0, n)
	}
	return res
}
