// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// Trajectory is the ordered history of weight matrix snapshots across a
// plasticity run: the initial matrix plus one snapshot per step, so its
// length is always steps+1.  It is append-only during the run and snapshots
// are never mutated after they are appended -- the caller owns it once the
// run returns.
type Trajectory []*etensor.Float32

// Final returns the last snapshot, or nil if the trajectory is empty.
func (tj Trajectory) Final() *etensor.Float32 {
	if len(tj) == 0 {
		return nil
	}
	return tj[len(tj)-1]
}

// NewWtMatrix returns a new zeroed nPre x nPost weight matrix.
func NewWtMatrix(nPre, nPost int) *etensor.Float32 {
	return etensor.NewFloat32([]int{nPre, nPost}, nil, []string{"Pre", "Post"})
}

// CopyMatrix returns a new exact copy of given 2D matrix.
func CopyMatrix(w *etensor.Float32) *etensor.Float32 {
	nw := etensor.NewFloat32([]int{w.Dim(0), w.Dim(1)}, nil, []string{"Pre", "Post"})
	copy(nw.Values, w.Values)
	return nw
}

// Clip clamps every element of w into rng, elementwise, in place.
// Weight bounds are enforced by clamping only -- never by projection or
// normalization.
func Clip(w *etensor.Float32, rng minmax.F32) {
	for i, v := range w.Values {
		w.Values[i] = rng.ClipVal(v)
	}
}
