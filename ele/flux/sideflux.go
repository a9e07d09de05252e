// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"context"

	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gofluid/mdl/fluid"
)

// SideFluxIntegral computes the flux of u across a boundary
//
//	Q = - Σ_qp w・k(p,T)・∇u・n
//
//	where k is a fluid property (the diffusivity); e.g. the thermal conductivity k_from_p_T
type SideFluxIntegral struct {
	Diffusivity fluid.Func // diffusivity
	Config      Config     // parallel loop
}

// NewSideFluxIntegral returns a new structure with default parallel configuration
func NewSideFluxIntegral(diffusivity fluid.Func) *SideFluxIntegral {
	return &SideFluxIntegral{Diffusivity: diffusivity, Config: DefaultConfig()}
}

// Compute computes the integral using the value form of the diffusivity
func (o SideFluxIntegral) Compute(ctx context.Context, pts []Point) (Q float64, err error) {
	ranges := o.Config.chunks(len(pts))
	partial := make([]float64, len(ranges))
	err = o.Config.run(ctx, ranges, func(ctx context.Context, c, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := o.qp(pts[i])
			if err != nil {
				return err
			}
			partial[c] += q
		}
		return nil
	})
	if err != nil {
		return
	}
	for _, q := range partial {
		Q += q
	}
	return
}

// ComputeAD computes the integral and its derivatives w.r.t the degrees of freedom
//
//	All dual numbers in pts must have n derivatives
func (o SideFluxIntegral) ComputeAD(ctx context.Context, pts []PointAD, n int) (Q ad.Dual, err error) {
	ranges := o.Config.chunks(len(pts))
	partial := make([]ad.Dual, len(ranges))
	err = o.Config.run(ctx, ranges, func(ctx context.Context, c, lo, hi int) (err error) {
		partial[c] = ad.New(0, n)
		var q ad.Dual
		for i := lo; i < hi; i++ {
			if err = ctx.Err(); err != nil {
				return
			}
			q, err = o.qpAD(pts[i])
			if err != nil {
				return
			}
			partial[c], err = ad.Add(partial[c], q)
			if err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return
	}
	Q = ad.New(0, n)
	for _, q := range partial {
		Q, err = ad.Add(Q, q)
		if err != nil {
			return
		}
	}
	return
}

// qp computes the integrand @ one point
func (o SideFluxIntegral) qp(pt Point) (float64, error) {
	k, err := o.Diffusivity.Value(pt.P, pt.T)
	if err != nil {
		return 0, err
	}
	gn, err := pt.dot()
	if err != nil {
		return 0, err
	}
	return -pt.W * k * gn, nil
}

// qpAD computes the integrand @ one point with dual numbers
func (o SideFluxIntegral) qpAD(pt PointAD) (res ad.Dual, err error) {
	k, err := o.Diffusivity.AD(pt.P, pt.T)
	if err != nil {
		return
	}
	gn, err := pt.dot()
	if err != nil {
		return
	}
	res, err = ad.Mul(k, gn)
	if err != nil {
		return
	}
	return ad.Scale(-pt.W, res), nil
}
