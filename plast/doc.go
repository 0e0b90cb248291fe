// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plast implements activity-dependent synaptic plasticity rules
operating on a dense pre x post weight matrix: spike-timing-dependent
plasticity (STDP) driven by exponentially-decaying eligibility traces, a
simple Hebbian coactivity rule, and the Bienenstock-Cooper-Munro (BCM) rule.

Each rule consumes binary pre- and postsynaptic spike matrices (time x
neuron, as produced by the spikegen package) and an initial weight matrix,
and produces the full weight trajectory: the initial matrix followed by one
snapshot per time step, with every weight clamped into a closed
[WtRange.Min, WtRange.Max] interval after every update.

A run is a single sequential recurrence: each step depends on trace and
weight state from the previous step, so the per-step loop is not
parallelizable internally.  All run state (traces, working weights, the BCM
activity average) is created fresh per run and owned exclusively by that run,
so independent runs with separate random generators can proceed concurrently.

Configuration errors (non-positive time constants, inverted weight bounds,
mismatched matrix shapes) are rejected before the step loop starts -- no
errors are raised mid-run.  Numeric edge cases from pathological parameters
(NaN, Inf) are not guarded against and propagate as-is.
*/
package plast
