// SPDX-License-Identifier: MIT
package steps

// Emitter accumulates the step sequence of one computation and forwards
// each step to an optional Observer as it is produced.
// An Emitter belongs to a single engine call and is not safe for concurrent use.
type Emitter struct {
	seq []Step
	obs Observer
}

// NewEmitter returns an Emitter reporting to obs; a nil obs is allowed.
func NewEmitter(obs Observer) *Emitter {
	return &Emitter{obs: obs}
}

// Emit appends s and notifies the observer with the step's index.
func (e *Emitter) Emit(s Step) {
	e.seq = append(e.seq, s)
	if e.obs != nil {
		e.obs.Observe(len(e.seq)-1, s)
	}
}

// Len returns the number of steps emitted so far.
func (e *Emitter) Len() int { return len(e.seq) }

// Steps returns the emitted sequence. The Emitter must not be used afterwards.
func (e *Emitter) Steps() []Step { return e.seq }
