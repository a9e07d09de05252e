// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// val returns the value form of a derivative form
func val(f DerivFunc) ValueFunc {
	return func(a, b float64) (float64, error) {
		v, _, _, err := f(a, b)
		return v, err
	}
}

// val1 returns the value form of a one-argument derivative form
func val1(f DerivFunc1) ValueFunc1 {
	return func(a float64) (float64, error) {
		v, _, err := f(a)
		return v, err
	}
}

// cte returns a value form that always returns c
func cte(c float64) ValueFunc {
	return func(a, b float64) (float64, error) {
		return c, nil
	}
}

// zero returns a derivative form for a constant c; i.e. with zero derivatives
func zero(c float64) DerivFunc {
	return func(a, b float64) (float64, float64, float64, error) {
		return c, 0, 0, nil
	}
}
