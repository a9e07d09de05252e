// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flux implements boundary integrals and boundary conditions whose
// coefficients are fluid properties
//
//	The mesh, shape functions and assembly are not handled here: callers compute
//	the data @ the integration points of a face (Point or PointAD) and receive the
//	integral or the local residual (and Jacobian, through dual numbers).
package flux

import (
	"github.com/cpmech/gofluid/ad"
	"github.com/cpmech/gosl/chk"
)

// Point holds data @ one integration point of a face
type Point struct {
	W    float64   // integration weight times the Jacobian of the face
	X    []float64 // coordinates; used by time-space functions. may be nil
	N    []float64 // unit outward normal
	S    []float64 // shape functions of the face
	Grad []float64 // gradient of u
	P    float64   // pressure
	T    float64   // temperature
}

// PointAD holds data @ one integration point of a face with state variables
// given as dual numbers w.r.t the degrees of freedom of the element
type PointAD struct {
	W    float64   // integration weight times the Jacobian of the face
	X    []float64 // coordinates; used by time-space functions. may be nil
	N    []float64 // unit outward normal
	S    []float64 // shape functions of the face
	Grad []ad.Dual // gradient of u
	P    ad.Dual   // pressure
	T    ad.Dual   // temperature
}

// dot computes Grad・N
func (o Point) dot() (res float64, err error) {
	if len(o.Grad) != len(o.N) {
		return 0, chk.Err("gradient and normal vectors must have the same length. %d != %d", len(o.Grad), len(o.N))
	}
	for i, g := range o.Grad {
		res += g * o.N[i]
	}
	return
}

// dot computes Grad・N
func (o PointAD) dot() (res ad.Dual, err error) {
	if len(o.Grad) != len(o.N) {
		return res, chk.Err("gradient and normal vectors must have the same length. %d != %d", len(o.Grad), len(o.N))
	}
	res = ad.New(0, o.P.Len())
	for i, g := range o.Grad {
		res, err = ad.Add(res, ad.Scale(o.N[i], g))
		if err != nil {
			return
		}
	}
	return
}
