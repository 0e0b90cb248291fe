// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import "github.com/goki/mat32"

// Trace is an exponentially-decaying eligibility trace, one entry per neuron
// in a population.  An entry jumps by 1 on that neuron's spike and otherwise
// decays geometrically every step, encoding recent spiking history.
// Traces are created fresh for each plasticity run and never persist across
// runs.
type Trace []float32

// NewTrace returns a zero-initialized trace for n neurons.
func NewTrace(n int) Trace {
	return make(Trace, n)
}

// Decay multiplies every entry by the given per-step decay factor.
func (tr Trace) Decay(fact float32) {
	for i := range tr {
		tr[i] *= fact
	}
}

// DecayFact returns the per-step geometric decay factor exp(-dt/tau) for
// given time step and time constant, both in msec.
func DecayFact(dt, tau float32) float32 {
	return mat32.Exp(-dt / tau)
}
