// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "gofluid"
	fallbackName     = "derivative_fallbacks_total"
)

// Counter counts diagnostics with a Prometheus counter labelled by model and function
type Counter struct {
	vec *prometheus.CounterVec
}

// NewCounter allocates a new Counter and registers it with reg (if not nil)
func NewCounter(reg prometheus.Registerer) (o *Counter, err error) {
	o = &Counter{
		vec: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      fallbackName,
				Help:      "Number of warnings about property functions falling back to zero derivatives",
			},
			[]string{"model", "func"},
		),
	}
	if reg != nil {
		err = reg.Register(o.vec)
	}
	return
}

// Warn increments the counter for e.Model and e.Func
func (o *Counter) Warn(e Event) {
	o.vec.WithLabelValues(e.Model, e.Func).Inc()
}

// Collector returns the underlying collector
func (o *Counter) Collector() *prometheus.CounterVec {
	return o.vec
}
