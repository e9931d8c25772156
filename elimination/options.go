// SPDX-License-Identifier: MIT

// Package elimination: functional options shared by every engine entry point.
package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/steps"
)

const panicEpsilonInvalid = "elimination: WithEpsilon: eps must be finite, non-negative"

// Option configures an engine call.
type Option func(*Options)

// Options holds the resolved configuration of one call.
type Options struct {
	eps      float64
	observer steps.Observer
	names    []string
}

// WithEpsilon sets the approximate-zero threshold for pivot and entry tests
// (default matrix.DefaultEpsilon). Panics on negative, NaN or Inf values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithObserver attaches an observer notified of every emitted step.
func WithObserver(obs steps.Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// WithVariableNames overrides the names used in back-substitution
// descriptions and expressions. Missing names fall back to x1, x2, ...
func WithVariableNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: matrix.DefaultEpsilon}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// name returns the display name of variable j.
func (o Options) name(j int) string {
	if j < len(o.names) && o.names[j] != "" {
		return o.names[j]
	}

	return fmt.Sprintf("x%d", j+1)
}
