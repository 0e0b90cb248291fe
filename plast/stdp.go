// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// STDPParams are the spike-timing-dependent plasticity parameters.
// Potentiation is driven by the presynaptic eligibility trace when a
// postsynaptic neuron spikes (causal pre-then-post pairing), depression by
// the postsynaptic trace when a presynaptic neuron spikes (anti-causal
// post-then-pre pairing).
type STDPParams struct {
	Lrate    float32    `def:"0.01" min:"0" desc:"learning rate eta -- scales both potentiation and depression"`
	TauPlus  float32    `def:"20" min:"0" desc:"time constant in msec for the presynaptic trace driving potentiation"`
	TauMinus float32    `def:"20" min:"0" desc:"time constant in msec for the postsynaptic trace driving depression"`
	APlus    float32    `def:"0.01" min:"0" desc:"amplitude of potentiation per causal pre-post pairing"`
	AMinus   float32    `def:"0.012" min:"0" desc:"amplitude of depression per anti-causal post-pre pairing -- slightly larger than APlus by default so that uncorrelated firing depresses on balance"`
	WtRange  minmax.F32 `view:"inline" desc:"closed bounds on synaptic weights -- every weight is clamped into this interval after every step"`
}

func (sp *STDPParams) Defaults() {
	sp.Lrate = 0.01
	sp.TauPlus = 20
	sp.TauMinus = 20
	sp.APlus = 0.01
	sp.AMinus = 0.012
	sp.WtRange.Set(-2, 2)
}

func (sp *STDPParams) Update() {
}

// Validate checks the parameters for configuration errors.
func (sp *STDPParams) Validate() error {
	if sp.TauPlus <= 0 || sp.TauMinus <= 0 {
		return fmt.Errorf("plast.STDPParams: TauPlus and TauMinus must be > 0, got %g, %g", sp.TauPlus, sp.TauMinus)
	}
	if sp.WtRange.Min > sp.WtRange.Max {
		return fmt.Errorf("plast.STDPParams: WtRange Min %g > Max %g", sp.WtRange.Min, sp.WtRange.Max)
	}
	return nil
}

// Run applies STDP to the given pre and post spike matrices (steps x
// nNeurons each) starting from winit (nPre x nPost), with time step dt in
// msec, returning the full weight trajectory of length steps+1 whose first
// element is an exact copy of winit.
//
// Within one step, depression from presynaptic spikes is applied before the
// postsynaptic trace is incremented by this step's postsynaptic spikes, and
// potentiation from postsynaptic spikes reads the presynaptic trace after
// this step's presynaptic increments.  A coincident pre+post spike therefore
// produces both: depression against the pre-update post trace, and
// potentiation from the just-incremented pre trace.  This ordering is the
// defined tie-break and must not be rearranged.
func (sp *STDPParams) Run(pre, post, winit *etensor.Float32, dt float32) (Trajectory, error) {
	if err := sp.Validate(); err != nil {
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
	traj = append(traj, CopyMatrix(winit)) // seed: no decay or clamp applied

	preTr := NewTrace(nPre)
	postTr := NewTrace(nPost)
	preFact := DecayFact(dt, sp.TauPlus)
	postFact := DecayFact(dt, sp.TauMinus)

	for k := 0; k < steps; k++ {
		preTr.Decay(preFact)
		postTr.Decay(postFact)

		for i := 0; i < nPre; i++ {
			if pre.Values[k*nPre+i] == 0 {
				continue
			}
			preTr[i]++
			wr := w.Values[i*nPost : (i+1)*nPost]
			for j := range wr {
				wr[j] -= sp.Lrate * sp.AMinus * postTr[j]
			}
		}
		for j := 0; j < nPost; j++ {
			if post.Values[k*nPost+j] == 0 {
				continue
			}
			postTr[j]++
			for i := 0; i < nPre; i++ {
				w.Values[i*nPost+j] += sp.Lrate * sp.APlus * preTr[i]
			}
		}
		Clip(w, sp.WtRange)
		traj = append(traj, CopyMatrix(w))
	}
	return traj, nil
}
