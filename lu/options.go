// SPDX-License-Identifier: MIT
package lu

import (
	"math"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/steps"
)

const panicEpsilonInvalid = "lu: WithEpsilon: eps must be finite, non-negative"

// Option configures a factorization.
type Option func(*Options)

// Options holds the resolved configuration of one call.
type Options struct {
	eps      float64
	observer steps.Observer
}

// WithEpsilon sets the threshold below which a pivot or entry counts as zero.
// Panics on negative, NaN or Inf values.
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

func gatherOptions(user ...Option) Options {
	o := Options{eps: matrix.DefaultEpsilon}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
