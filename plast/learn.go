// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

///////////////////////////////////////////////////////////////////////
//  learn.go contains the preconditions shared by all plasticity rules

// checkRun validates the shared preconditions for a plasticity run: both
// spike matrices are 2D with the same number of steps, the initial weight
// matrix is nPre x nPost, and dt is positive.  All violations are rejected
// here, at call entry, never mid-loop.
func checkRun(pre, post, winit *etensor.Float32, dt float32) error {
	if dt <= 0 {
		return fmt.Errorf("plast: dt must be > 0, got %g", dt)
	}
	if pre == nil || post == nil || winit == nil {
		return fmt.Errorf("plast: pre, post, and winit matrices must all be non-nil")
	}
	if pre.NumDims() != 2 || post.NumDims() != 2 || winit.NumDims() != 2 {
		return fmt.Errorf("plast: pre, post, and winit must all be 2D, got %d, %d, %d dims", pre.NumDims(), post.NumDims(), winit.NumDims())
	}
	if pre.Dim(0) != post.Dim(0) {
		return fmt.Errorf("plast: pre and post spike matrices must have the same number of steps: %d != %d", pre.Dim(0), post.Dim(0))
	}
	if pre.Dim(1) < 1 || post.Dim(1) < 1 {
		return fmt.Errorf("plast: population sizes must be at least 1, got %d pre, %d post", pre.Dim(1), post.Dim(1))
	}
	if winit.Dim(0) != pre.Dim(1) || winit.Dim(1) != post.Dim(1) {
		return fmt.Errorf("plast: winit must be %d x %d to match the populations, got %d x %d", pre.Dim(1), post.Dim(1), winit.Dim(0), winit.Dim(1))
	}
	return nil
}

// anySpike returns true if any entry in given spike row is active.
func anySpike(row []float32) bool {
	for _, v := range row {
		if v > 0 {
			return true
		}
	}
	return false
}
