// SPDX-License-Identifier: MIT

// Package steps: observers notified synchronously as an engine emits steps.
// Observers see every step in emission order before the engine returns and
// never influence the computed result.
package steps

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Observer receives each step as it is emitted, with its index in the sequence.
type Observer interface {
	Observe(index int, s Step)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(index int, s Step)

// Observe calls f(index, s).
func (f ObserverFunc) Observe(index int, s Step) { f(index, s) }

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

type multiObserver []Observer

func (m multiObserver) Observe(index int, s Step) {
	for _, o := range m {
		o.Observe(index, s)
	}
}

// Multi fans each step out to every non-nil observer, in argument order.
func Multi(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

// NoOpObserver discards all steps.
type NoOpObserver struct{}

// NoOp returns an observer that discards all steps.
func NoOp() NoOpObserver { return NoOpObserver{} }

// Observe implements Observer by doing nothing.
func (NoOpObserver) Observe(int, Step) {}

// ─────────────────────────────────────────────────────────────────────────────
// Recorder
// ─────────────────────────────────────────────────────────────────────────────

// Recorder keeps every observed step in memory.
// Safe for concurrent use so one Recorder can watch several engine calls.
type Recorder struct {
	mu  sync.Mutex
	seq []Step
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe appends s.
func (r *Recorder) Observe(_ int, s Step) {
	r.mu.Lock()
	r.seq = append(r.seq, s)
	r.mu.Unlock()
}

// Steps returns a copy of the recorded sequence.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Step(nil), r.seq...)
}

// Reset drops all recorded steps.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.seq = nil
	r.mu.Unlock()
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver writes one structured debug event per step using zerolog.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer that logs every step at debug level.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Observe implements Observer.
func (o *LoggingObserver) Observe(index int, s Step) {
	ev := o.logger.Debug().
		Int("index", index).
		Stringer("kind", s.Kind).
		Str("description", s.Description)
	if s.PivotRow != None {
		ev = ev.Int("pivot_row", s.PivotRow)
	}
	if s.PivotCol != None {
		ev = ev.Int("pivot_col", s.PivotCol)
	}
	if s.EliminateRow != None {
		ev = ev.Int("eliminate_row", s.EliminateRow)
	}
	if s.SwapRow != None {
		ev = ev.Int("swap_row", s.SwapRow)
	}
	if s.Variable != None {
		ev = ev.Int("variable", s.Variable)
	}
	if s.Kind == KindEliminate || s.Kind == KindScale {
		ev = ev.Float64("factor", s.Factor)
	}
	ev.Msg("step emitted")
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

// MetricsObserver counts emitted steps per kind in a Prometheus counter vector.
type MetricsObserver struct {
	emitted *prometheus.CounterVec
}

// NewMetricsObserver registers <namespace>_steps_emitted_total{kind} on reg
// (prometheus.DefaultRegisterer when reg is nil). Registering twice under the
// same name reuses the existing collector instead of failing.
func NewMetricsObserver(reg prometheus.Registerer, namespace string) (*MetricsObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_emitted_total",
			Help:      "Number of steps emitted by the elimination and factorization engines.",
		},
		[]string{"kind"},
	)
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		cv = existing
	}

	return &MetricsObserver{emitted: cv}, nil
}

// Observe implements Observer by incrementing the counter for s.Kind.
func (o *MetricsObserver) Observe(_ int, s Step) {
	o.emitted.WithLabelValues(s.Kind.String()).Inc()
}

// Reset zeroes all per-kind counters.
func (o *MetricsObserver) Reset() {
	o.emitted.Reset()
}
