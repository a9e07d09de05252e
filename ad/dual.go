// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements forward-mode dual numbers for automatic differentiation
//
//	A Dual holds a value V and the partial derivatives D of V with respect to a fixed
//	list of upstream degrees of freedom (DOFs). The position i in D always refers to
//	the same DOF for all duals in one expression; this package checks lengths but
//	cannot check the meaning of each index. Building consistently-ordered inputs is
//	the responsibility of the caller.
package ad

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"
)

// ErrSizeMismatch is returned when two duals with different numbers of derivatives are combined
var ErrSizeMismatch = errors.New("derivative vectors have different lengths")

// Dual holds a value and its derivatives with respect to all tracked DOFs
type Dual struct {
	V float64   // value
	D []float64 // D[i] = ∂V/∂x_i
}

// New returns a dual with value v and n zero derivatives
func New(v float64, n int) Dual {
	return Dual{V: v, D: make([]float64, n)}
}

// Const is an alias of New; it makes call sites that build constants read better
func Const(v float64, n int) Dual {
	return New(v, n)
}

// Var returns a dual seeded as the independent variable number i out of n
//
//	Note: D = e_i (the unit vector along i)
//	Requires 0 ≤ i < n; otherwise Var panics with an index out of range error
func Var(v float64, n, i int) Dual {
	o := New(v, n)
	o.D[i] = 1
	return o
}

// Vars returns n duals seeded as independent variables: Vars(a,b)[k] = Var(vals[k], n, k)
func Vars(vals ...float64) []Dual {
	n := len(vals)
	res := make([]Dual, n)
	for k, v := range vals {
		res[k] = Var(v, n, k)
	}
	return res
}

// Len returns the number of derivatives
func (o Dual) Len() int {
	return len(o.D)
}

// Copy returns a deep copy
func (o Dual) Copy() Dual {
	res := Dual{V: o.V, D: make([]float64, len(o.D))}
	copy(res.D, o.D)
	return res
}

// String returns a "{V, [D...]}" representation
func (o Dual) String() string {
	return io.Sf("{%g, %v}", o.V, o.D)
}

// Chain1 applies the chain rule for a one-argument function given its value and derivative
//
//	out.V = v
//	out.D = dvda・A.D
func Chain1(v, dvda float64, A Dual) Dual {
	res := New(v, len(A.D))
	for i, da := range A.D {
		res.D[i] = dvda * da
	}
	return res
}

// Chain2 applies the chain rule for a two-argument function given its value and partial derivatives
//
//	out.V    = v
//	out.D[i] = dvda・A.D[i] + dvdb・B.D[i]
func Chain2(v, dvda, dvdb float64, A, B Dual) (res Dual, err error) {
	if len(A.D) != len(B.D) {
		return res, sizeErr(len(A.D), len(B.D))
	}
	res = New(v, len(A.D))
	for i := range res.D {
		res.D[i] = dvda*A.D[i] + dvdb*B.D[i]
	}
	return
}

// Add returns a + b
func Add(a, b Dual) (Dual, error) {
	return Chain2(a.V+b.V, 1, 1, a, b)
}

// Sub returns a - b
func Sub(a, b Dual) (Dual, error) {
	return Chain2(a.V-b.V, 1, -1, a, b)
}

// Mul returns a・b
func Mul(a, b Dual) (Dual, error) {
	return Chain2(a.V*b.V, b.V, a.V, a, b)
}

// Div returns a / b
//
//	Note: no special treatment of b.V == 0; Inf and NaN pass through
func Div(a, b Dual) (Dual, error) {
	return Chain2(a.V/b.V, 1/b.V, -a.V/(b.V*b.V), a, b)
}

// Scale returns α・a
func Scale(α float64, a Dual) Dual {
	return Chain1(α*a.V, α, a)
}

// Shift returns a + c for a constant c
func Shift(a Dual, c float64) Dual {
	return Chain1(a.V+c, 1, a)
}

// Neg returns -a
func Neg(a Dual) Dual {
	return Scale(-1, a)
}

// Inv returns 1/a
func Inv(a Dual) Dual {
	return Chain1(1/a.V, -1/(a.V*a.V), a)
}

// Pow returns a^n for a constant exponent n
func Pow(a Dual, n float64) Dual {
	return Chain1(math.Pow(a.V, n), n*math.Pow(a.V, n-1), a)
}

// Exp returns exp(a)
func Exp(a Dual) Dual {
	e := math.Exp(a.V)
	return Chain1(e, e, a)
}

// Log returns ln(a)
func Log(a Dual) Dual {
	return Chain1(math.Log(a.V), 1/a.V, a)
}

// Sqrt returns √a
func Sqrt(a Dual) Dual {
	s := math.Sqrt(a.V)
	return Chain1(s, 0.5/s, a)
}

func sizeErr(na, nb int) error {
	return &SizeError{Na: na, Nb: nb}
}

// SizeError reports the two lengths that did not match
type SizeError struct {
	Na, Nb int
}

func (e *SizeError) Error() string {
	return io.Sf("%v: %d != %d", ErrSizeMismatch, e.Na, e.Nb)
}

// Unwrap makes errors.Is(err, ErrSizeMismatch) work
func (e *SizeError) Unwrap() error {
	return ErrSizeMismatch
}
