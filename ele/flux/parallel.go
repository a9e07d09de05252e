// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls the loop over integration points
type Config struct {
	NumWorkers   int // number of goroutines; ≤ 1 => sequential
	MinChunkSize int // minimum number of points per goroutine
}

// DefaultConfig returns the default configuration based on the number of CPUs
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.NumCPU(), MinChunkSize: 16}
}

// chunks splits [0, n) into ranges of consecutive indices
func (o Config) chunks(n int) (ranges [][2]int) {
	size := n
	if o.NumWorkers > 1 {
		size = (n + o.NumWorkers - 1) / o.NumWorkers
		if size < o.MinChunkSize {
			size = o.MinChunkSize
		}
	}
	if size < 1 {
		size = 1
	}
	for lo := 0; lo < n; lo += size {
		ranges = append(ranges, [2]int{lo, min(lo+size, n)})
	}
	return
}

// run calls fcn(c, lo, hi) for each chunk c, concurrently if more than one chunk is needed
//
//	The first error cancels the remaining chunks and is returned. fcn must only
//	write to data owned by chunk c.
func (o Config) run(ctx context.Context, ranges [][2]int, fcn func(ctx context.Context, c, lo, hi int) error) error {
	if len(ranges) == 1 {
		return fcn(ctx, 0, ranges[0][0], ranges[0][1])
	}
	g, gctx := errgroup.WithContext(ctx)
	for c, r := range ranges {
		c, r := c, r
		g.Go(func() error {
			return fcn(gctx, c, r[0], r[1])
		})
	}
	return g.Wait()
}
