// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plast is the overall repository for a discrete-time simulation engine
for single-compartment spiking neurons and activity-dependent synaptic
plasticity, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* plast: the core engine: simulation time stepping, exponentially-decaying
eligibility traces, bounded weight matrices and their trajectories, and the
three plasticity rules (spike-timing-dependent plasticity / STDP, simple
Hebbian coactivity, and Bienenstock-Cooper-Munro / BCM) operating on a dense
pre x post weight matrix.

* spikegen: binary spike-train generators for a population of neurons:
independent Poisson, regular periodic with random phase offsets, and
correlated Poisson mixing a shared stream with per-neuron streams.

* lif: a leaky integrate-and-fire membrane potential integrator, usable as a
standalone primitive driven by constant or noisy input current.

* examples: these compile into runnable programs -- examples/plastrun is the
orchestration layer that generates spike trains, runs a plasticity rule, and
logs weight statistics over time.
*/
package plast
