// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikegen generates binary spike-train matrices (time x neuron) for a
population of neurons: independent Poisson, regular periodic with random
phase offsets, and correlated Poisson mixing a shared stream with per-neuron
independent streams.

All generators draw exclusively from an explicitly-passed *rand.Rand, so two
runs with the same seed produce bit-identical matrices, and concurrent runs
with separate generators never interfere.  A generated matrix is not mutated
afterward by anything in this repository -- treat it as immutable.
*/
package spikegen

import (
	"fmt"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// NewSpikes returns a new zeroed steps x nNeurons spike matrix.
func NewSpikes(steps, nNeurons int) *etensor.Float32 {
	return etensor.NewFloat32([]int{steps, nNeurons}, nil, []string{"Time", "Neuron"})
}

// checkGen validates the shared generator preconditions, at call entry.
func checkGen(steps, nNeurons int, dt float32, rnd *rand.Rand) error {
	if steps < 1 {
		return fmt.Errorf("spikegen: steps must be at least 1, got %d", steps)
	}
	if nNeurons < 1 {
		return fmt.Errorf("spikegen: nNeurons must be at least 1, got %d", nNeurons)
	}
	if dt <= 0 {
		return fmt.Errorf("spikegen: dt must be > 0, got %g", dt)
	}
	if rnd == nil {
		return fmt.Errorf("spikegen: a non-nil random generator is required")
	}
	return nil
}

///////////////////////////////////////////////////////////////////////
//  Poisson

// PoissonParams generates independent Poisson spike trains: each (step,
// neuron) entry is an independent Bernoulli draw with per-step probability
// RateHz * dt / 1000.
type PoissonParams struct {
	RateHz float32 `def:"20" min:"0" desc:"mean firing rate in Hz"`
}

func (pp *PoissonParams) Defaults() {
	pp.RateHz = 20
}

// Gen generates a steps x nNeurons Poisson spike matrix, with dt in msec.
func (pp *PoissonParams) Gen(steps, nNeurons int, dt float32, rnd *rand.Rand) (*etensor.Float32, error) {
	if err := checkGen(steps, nNeurons, dt, rnd); err != nil {
		return nil, err
	}
	if pp.RateHz < 0 {
		return nil, fmt.Errorf("spikegen.PoissonParams: RateHz must be >= 0, got %g", pp.RateHz)
	}
	p := pp.RateHz * dt / 1000
	sm := NewSpikes(steps, nNeurons)
	for i := range sm.Values {
		if rnd.Float32() < p {
			sm.Values[i] = 1
		}
	}
	return sm, nil
}

///////////////////////////////////////////////////////////////////////
//  Regular

// RegularParams generates perfectly periodic spike trains: each neuron gets
// an independent uniformly-random integer phase offset within one interval,
// then spikes exactly once per interval with no jitter.
type RegularParams struct {
	IntervalMsec float32 `def:"50" min:"0" desc:"inter-spike interval in msec -- must be at least one time step"`
}

func (rp *RegularParams) Defaults() {
	rp.IntervalMsec = 50
}

// Gen generates a steps x nNeurons regular spike matrix, with dt in msec.
func (rp *RegularParams) Gen(steps, nNeurons int, dt float32, rnd *rand.Rand) (*etensor.Float32, error) {
	if err := checkGen(steps, nNeurons, dt, rnd); err != nil {
		return nil, err
	}
	ist := int(rp.IntervalMsec / dt)
	if ist < 1 {
		return nil, fmt.Errorf("spikegen.RegularParams: IntervalMsec %g must be at least one time step (dt = %g)", rp.IntervalMsec, dt)
	}
	sm := NewSpikes(steps, nNeurons)
	for ni := 0; ni < nNeurons; ni++ {
		off := rnd.Intn(ist)
		for k := off; k < steps; k += ist {
			sm.Values[k*nNeurons+ni] = 1
		}
	}
	return sm, nil
}

///////////////////////////////////////////////////////////////////////
//  Correlated

// CorrelatedParams generates correlated spike trains by mixing one shared
// Bernoulli stream with a per-neuron independent stream, both at RateHz:
// neuron i spikes at step k iff Corr*shared_k + (1-Corr)*indep_ki > 0.5.
// This is a deterministic threshold mix, not a calibrated correlation
// coefficient -- it is kept in this literal form because consumers depend on
// its exact output for a given seed.
type CorrelatedParams struct {
	RateHz float32 `def:"20" min:"0" desc:"base firing rate in Hz for both the shared and independent streams"`
	Corr   float32 `def:"0.5" min:"0" max:"1" desc:"mixing proportion of the shared stream: 0 = fully independent, 1 = all neurons follow the shared stream"`
}

func (cp *CorrelatedParams) Defaults() {
	cp.RateHz = 20
	cp.Corr = 0.5
}

// Gen generates a steps x nNeurons correlated spike matrix, with dt in msec.
// The shared stream is drawn first (one value per step), then the
// independent streams in step-major order, so output is reproducible for a
// given generator state.
func (cp *CorrelatedParams) Gen(steps, nNeurons int, dt float32, rnd *rand.Rand) (*etensor.Float32, error) {
	if err := checkGen(steps, nNeurons, dt, rnd); err != nil {
		return nil, err
	}
	if cp.RateHz < 0 {
		return nil, fmt.Errorf("spikegen.CorrelatedParams: RateHz must be >= 0, got %g", cp.RateHz)
	}
	if cp.Corr < 0 || cp.Corr > 1 {
		return nil, fmt.Errorf("spikegen.CorrelatedParams: Corr must be in [0, 1], got %g", cp.Corr)
	}
	p := cp.RateHz * dt / 1000
	shared := make([]float32, steps)
	for k := range shared {
		if rnd.Float32() < p {
			shared[k] = 1
		}
	}
	sm := NewSpikes(steps, nNeurons)
	for k := 0; k < steps; k++ {
		for ni := 0; ni < nNeurons; ni++ {
			var ind float32
			if rnd.Float32() < p {
				ind = 1
			}
			if cp.Corr*shared[k]+(1-cp.Corr)*ind > 0.5 {
				sm.Values[k*nNeurons+ni] = 1
			}
		}
	}
	return sm, nil
}
