// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// BCMParams are the Bienenstock-Cooper-Munro rule parameters.  The Theta
// modulation threshold separates potentiation from depression of active
// synapses, preventing runaway potentiation.
//
// Note: the (spike - Theta) modulation term uses the instantaneous binary
// postsynaptic spike value rather than the running activity average -- this
// differs from the textbook BCM sliding-threshold formulation and is
// preserved intentionally, as downstream consumers depend on this exact
// behavior.  The running average is still maintained every step.
type BCMParams struct {
	Lrate   float32    `def:"0.01" min:"0" desc:"learning rate eta"`
	Theta   float32    `def:"1" desc:"modulation threshold -- postsynaptic activity above Theta potentiates active synapses, below Theta depresses them"`
	TauAvg  float32    `def:"100" min:"0" desc:"time constant in msec for the running average of postsynaptic activity -- long relative to the other time constants"`
	WtRange minmax.F32 `view:"inline" desc:"closed bounds on synaptic weights -- weights are clamped into this interval after every update"`
}

func (bp *BCMParams) Defaults() {
	bp.Lrate = 0.01
	bp.Theta = 1
	bp.TauAvg = 100
	bp.WtRange.Set(-2, 2)
}

func (bp *BCMParams) Update() {
}

// Validate checks the parameters for configuration errors.
func (bp *BCMParams) Validate() error {
	if bp.TauAvg <= 0 {
		return fmt.Errorf("plast.BCMParams: TauAvg must be > 0, got %g", bp.TauAvg)
	}
	if bp.WtRange.Min > bp.WtRange.Max {
		return fmt.Errorf("plast.BCMParams: WtRange Min %g > Max %g", bp.WtRange.Min, bp.WtRange.Max)
	}
	return nil
}

// Run applies the BCM rule to the given pre and post spike matrices starting
// from winit, returning the full weight trajectory of length steps+1 whose
// first element is an exact copy of winit.  The update only fires on steps
// where both populations have at least one spike; the running postsynaptic
// activity average decays and accumulates every step regardless.
func (bp *BCMParams) Run(pre, post, winit *etensor.Float32, dt float32) (Trajectory, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if err := checkRun(pre, post, winit, dt); err != nil {
		return nil, err
	}
	steps := pre.Dim(0)
	nPre := pre.Dim(1)
	nPost := post.Dim(1)

	w := CopyMatrix(winit)
	traj := make(Trajectory, 0, steps+1)
	traj = append(traj, CopyMatrix(winit))

	avg := NewTrace(nPost)
	avgFact := DecayFact(dt, bp.TauAvg)

	for k := 0; k < steps; k++ {
		preRow := pre.Values[k*nPre : (k+1)*nPre]
		postRow := post.Values[k*nPost : (k+1)*nPost]

		avg.Decay(avgFact)
		for j, sv := range postRow {
			avg[j] += sv
		}

		if anySpike(preRow) && anySpike(postRow) {
			for i, pv := range preRow {
				if pv == 0 {
					continue
				}
				wr := w.Values[i*nPost : (i+1)*nPost]
				for j, sv := range postRow {
					wr[j] += bp.Lrate * pv * sv * (sv - bp.Theta)
				}
			}
			Clip(w, bp.WtRange)
		}
		traj = append(traj, CopyMatrix(w))
	}
	return traj, nil
}
