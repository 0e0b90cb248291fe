// Copyright (c) 2024, The BNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikegen

import (
	"math/rand"
	"testing"
)

func TestPoissonDeterministic(t *testing.T) {
	pp := PoissonParams{}
	pp.Defaults()

	// zero rate: no spikes
	pp.RateHz = 0
	sm, err := pp.Gen(100, 5, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range sm.Values {
		if v != 0 {
			t.Fatalf("idx %d: got %v, want 0 at zero rate", i, v)
		}
	}

	// per-step probability >= 1: all spikes
	pp.RateHz = 2000
	sm, err = pp.Gen(100, 5, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range sm.Values {
		if v != 1 {
			t.Fatalf("idx %d: got %v, want 1 at saturating rate", i, v)
		}
	}
}

func TestPoissonRepro(t *testing.T) {
	pp := PoissonParams{}
	pp.Defaults()

	a, err := pp.Gen(200, 10, 1, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := pp.Gen(200, 10, 1, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("idx %d: same seed produced different spikes", i)
		}
	}
}

func TestRegular(t *testing.T) {
	rp := RegularParams{}
	rp.Defaults()
	rp.IntervalMsec = 10

	steps, n := 100, 4
	sm, err := rp.Gen(steps, n, 1, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	for ni := 0; ni < n; ni++ {
		var times []int
		for k := 0; k < steps; k++ {
			if sm.Values[k*n+ni] == 1 {
				times = append(times, k)
			}
		}
		// offset in [0, 10) means exactly steps/interval spikes here
		if len(times) != 10 {
			t.Errorf("neuron %d: got %d spikes, want 10", ni, len(times))
		}
		if times[0] < 0 || times[0] >= 10 {
			t.Errorf("neuron %d: offset %d outside [0, 10)", ni, times[0])
		}
		for i := 1; i < len(times); i++ {
			if times[i]-times[i-1] != 10 {
				t.Errorf("neuron %d: interval %d between spikes %d and %d, want 10", ni, times[i]-times[i-1], i-1, i)
			}
		}
	}
}

func TestCorrelatedExtremes(t *testing.T) {
	cp := CorrelatedParams{}
	cp.Defaults()

	// fully correlated: every neuron follows the shared stream exactly
	cp.Corr = 1
	steps, n := 200, 6
	sm, err := cp.Gen(steps, n, 1, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < steps; k++ {
		first := sm.Values[k*n]
		for ni := 1; ni < n; ni++ {
			if sm.Values[k*n+ni] != first {
				t.Fatalf("step %d: neurons diverge at Corr = 1", k)
			}
		}
	}

	// binary output in all cases
	cp.Corr = 0.5
	sm, err = cp.Gen(steps, n, 1, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range sm.Values {
		if v != 0 && v != 1 {
			t.Fatalf("idx %d: non-binary value %v", i, v)
		}
	}
}

func TestCorrelatedRepro(t *testing.T) {
	cp := CorrelatedParams{}
	cp.Defaults()

	a, err := cp.Gen(150, 8, 1, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := cp.Gen(150, 8, 1, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("idx %d: same seed produced different spikes", i)
		}
	}
}

func TestGenErrs(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	pp := PoissonParams{}
	pp.Defaults()
	if _, err := pp.Gen(0, 5, 1, rnd); err == nil {
		t.Errorf("expected error for steps = 0")
	}
	if _, err := pp.Gen(10, 0, 1, rnd); err == nil {
		t.Errorf("expected error for nNeurons = 0")
	}
	if _, err := pp.Gen(10, 5, 0, rnd); err == nil {
		t.Errorf("expected error for dt = 0")
	}
	if _, err := pp.Gen(10, 5, 1, nil); err == nil {
		t.Errorf("expected error for nil generator")
	}
	pp.RateHz = -1
	if _, err := pp.Gen(10, 5, 1, rnd); err == nil {
		t.Errorf("expected error for negative rate")
	}

	rp := RegularParams{}
	rp.Defaults()
	rp.IntervalMsec = 0.5
	if _, err := rp.Gen(10, 5, 1, rnd); err == nil {
		t.Errorf("expected error for interval below one step")
	}

	cp := CorrelatedParams{}
	cp.Defaults()
	cp.Corr = 1.5
	if _, err := cp.Gen(10, 5, 1, rnd); err == nil {
		t.Errorf("expected error for Corr > 1")
	}
}
