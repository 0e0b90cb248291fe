// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"

	"github.com/goki/mat32"
)

// plast.Time contains the discrete time-stepping parameters for a single
// simulation run.  The time axis is t_k = k * Dt, fixed-step, strictly
// increasing.
type Time struct {
	Msec  float32 `min:"0" desc:"total duration of the run, in milliseconds of simulation time"`
	Dt    float32 `def:"1" min:"0" desc:"integration time step, in milliseconds"`
	Steps int     `inactive:"+" desc:"number of steps in the run = ceil(Msec / Dt), computed in NewTime"`
}

// NewTime returns a new Time for given total duration and time step, both in
// milliseconds.  Non-positive values are configuration errors, rejected here
// rather than during a run.
func NewTime(msec, dt float32) (*Time, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("plast.NewTime: dt must be > 0, got %g", dt)
	}
	if msec <= 0 {
		return nil, fmt.Errorf("plast.NewTime: msec must be > 0, got %g", msec)
	}
	tm := &Time{Msec: msec, Dt: dt}
	tm.Steps = int(mat32.Ceil(msec / dt))
	return tm, nil
}

// Current returns the simulation time in msec at step k.
func (tm *Time) Current(k int) float32 {
	return float32(k) * tm.Dt
}
