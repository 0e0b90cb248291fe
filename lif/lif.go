// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements a single-compartment leaky integrate-and-fire (LIF)
membrane potential model: a first-order leak toward VRest integrated with
the explicit Euler method, with a hard reset to VReset when the potential
reaches the VTh threshold.

At each step the potential is first advanced by the Euler update, then tested
against threshold: on a crossing, the spike is recorded at that step and the
stored trace value is overwritten with VReset, not the crossing value.  This
forward order is part of the model definition and matters for bit-level
reproducibility.

No refractory period is modeled -- a neuron can spike on consecutive steps if
driven hard enough.  This is a documented limitation of the model, not a bug.
*/
package lif

import (
	"fmt"
	"math/rand"

	"github.com/goki/mat32"
)

// Params are the leaky integrate-and-fire membrane parameters, in normalized
// potential units and msec time units.
type Params struct {
	Tau    float32 `def:"20" min:"0" desc:"membrane time constant in msec -- how quickly the potential leaks back toward VRest"`
	VRest  float32 `def:"0" desc:"resting potential that the membrane decays toward with no input current"`
	VReset float32 `def:"0" desc:"potential the membrane is reset to immediately after a spike"`
	VTh    float32 `def:"1" desc:"spike threshold -- reaching it triggers a spike and a hard reset"`
}

func (lp *Params) Defaults() {
	lp.Tau = 20
	lp.VRest = 0
	lp.VReset = 0
	lp.VTh = 1
}

func (lp *Params) Update() {
}

// Validate checks the parameters and run configuration for errors, before
// any integration starts.
func (lp *Params) Validate(n int, dt float32) error {
	if lp.Tau <= 0 {
		return fmt.Errorf("lif.Params: Tau must be > 0, got %g", lp.Tau)
	}
	if dt <= 0 {
		return fmt.Errorf("lif.Params: dt must be > 0, got %g", dt)
	}
	if n < 1 {
		return fmt.Errorf("lif.Params: number of steps must be at least 1, got %d", n)
	}
	return nil
}

// Run integrates the membrane for n steps of dt msec, driven by constant
// current idc plus optional Gaussian noise with standard deviation sigma,
// scaled by sqrt(dt).  It returns the potential trace (length n, with
// V_0 = VRest) and the steps at which spikes occurred.
func (lp *Params) Run(n int, dt, idc, sigma float32, rnd *rand.Rand) ([]float32, []int, error) {
	cur := make([]float32, n)
	for i := range cur {
		cur[i] = idc
	}
	return lp.RunCurrent(cur, dt, sigma, rnd)
}

// RunCurrent is Run driven by a full input current signal, one value per
// step: cur[k] drives the update at step k, and len(cur) sets the number of
// steps.
func (lp *Params) RunCurrent(cur []float32, dt, sigma float32, rnd *rand.Rand) ([]float32, []int, error) {
	n := len(cur)
	if err := lp.Validate(n, dt); err != nil {
		return nil, nil, err
	}
	if sigma > 0 && rnd == nil {
		return nil, nil, fmt.Errorf("lif.Params: sigma %g > 0 requires a non-nil random generator", sigma)
	}
	vm := make([]float32, n)
	vm[0] = lp.VRest
	var spikes []int
	alpha := dt / lp.Tau
	nsc := sigma * mat32.Sqrt(dt)
	for k := 1; k < n; k++ {
		dv := alpha * (-(vm[k-1] - lp.VRest) + cur[k])
		if sigma > 0 {
			dv += nsc * float32(rnd.NormFloat64())
		}
		vm[k] = vm[k-1] + dv
		if vm[k] >= lp.VTh {
			spikes = append(spikes, k)
			vm[k] = lp.VReset
		}
	}
	return vm, spikes, nil
}

// SpikeTimes converts spike step indexes into times in msec.
func SpikeTimes(spikes []int, dt float32) []float32 {
	ts := make([]float32, len(spikes))
	for i, k := range spikes {
		ts[i] = float32(k) * dt
	}
	return ts
}
