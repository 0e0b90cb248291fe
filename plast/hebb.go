// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// HebbParams are the simple Hebbian coactivity rule parameters: when any
// presynaptic and any postsynaptic neuron spike in the same step, weights
// change by Lrate times the outer product of the two binary spike rows.
// There is no trace state and no temporal window: pre and post activity must
// be simultaneous within one step to have any effect.
type HebbParams struct {
	Lrate   float32    `def:"0.05" min:"0" desc:"learning rate eta on the outer product of coincident pre and post spike rows"`
	WtRange minmax.F32 `view:"inline" desc:"closed bounds on synaptic weights -- weights are clamped into this interval after every update"`
}

func (hp *HebbParams) Defaults() {
	hp.Lrate = 0.05
	hp.WtRange.Set(-2, 2)
}

func (hp *HebbParams) Update() {
}

// Validate checks the parameters for configuration errors.
func (hp *HebbParams) Validate() error {
	if hp.WtRange.Min > hp.WtRange.Max {
		return fmt.Errorf("plast.HebbParams: WtRange Min %g > Max %g", hp.WtRange.Min, hp.WtRange.Max)
	}
	return nil
}

// Run applies the Hebbian rule to the given pre and post spike matrices
// starting from winit, returning the full weight trajectory of length
// steps+1 whose first element is an exact copy of winit.  A snapshot is
// appended every step whether or not an update fired.
func (hp *HebbParams) Run(pre, post, winit *etensor.Float32, dt float32) (Trajectory, error) {
	if err := hp.Validate(); err != nil {
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

	for k := 0; k < steps; k++ {
		preRow := pre.Values[k*nPre : (k+1)*nPre]
		postRow := post.Values[k*nPost : (k+1)*nPost]
		if anySpike(preRow) && anySpike(postRow) {
			for i, pv := range preRow {
				if pv == 0 {
					continue
				}
				wr := w.Values[i*nPost : (i+1)*nPost]
				for j, sv := range postRow {
					wr[j] += hp.Lrate * pv * sv
				}
			}
			Clip(w, hp.WtRange)
		}
		traj = append(traj, CopyMatrix(w))
	}
	return traj, nil
}
