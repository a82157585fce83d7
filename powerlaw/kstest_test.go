// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestKolmogorovP(t *testing.T) {
	if got := KolmogorovP(0); got != 1 {
		t.Errorf("KolmogorovP(0) = %v, want 1", got)
	}
	if got := KolmogorovP(-1); got != 1 {
		t.Errorf("KolmogorovP(-1) = %v, want 1", got)
	}
	// Reference values of Q(λ) = 2Σ(-1)^(k-1)exp(-2k²λ²).
	if got := KolmogorovP(1); !aeq(0.2699996716, got) {
		t.Errorf("KolmogorovP(1) = %v, want 0.2699996716", got)
	}
	if got := KolmogorovP(2); !aeq(0.0006709253, got) {
		t.Errorf("KolmogorovP(2) = %v, want 0.0006709253", got)
	}
	if got := KolmogorovP(0.5); math.Abs(got-0.9639) > 1e-3 {
		t.Errorf("KolmogorovP(0.5) = %v, want about 0.9639", got)
	}

	// Monotone non-increasing in lambda.
	prev := 1.0
	for l := 0.1; l < 3; l += 0.1 {
		p := KolmogorovP(l)
		if p > prev || p < 0 {
			t.Errorf("KolmogorovP(%v) = %v, want in [0, %v]", l, p, prev)
		}
		prev = p
	}
}

// A stratified sample hits the empirical CDF exactly between its
// steps, so D must be exactly 1/(2n).
func TestKSTestStratified(t *testing.T) {
	d := mustNew(t, -2, 1, 100)
	n := 1000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.InvCDF((float64(i) + 0.5) / float64(n))
	}
	r, err := KSTest(xs, d)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.0005, r.D) {
		t.Errorf("D = %v, want 0.0005", r.D)
	}
	if r.P < 0.999 {
		t.Errorf("P = %v, want about 1", r.P)
	}
	if r.N != n {
		t.Errorf("N = %d, want %d", r.N, n)
	}
}

func TestKSTestRejectsWrongExponent(t *testing.T) {
	src := mustNew(t, -2, 1, 100)
	n := 500
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = src.InvCDF((float64(i) + 0.5) / float64(n))
	}

	wrong := mustNew(t, -3, 1, 100)
	r, err := KSTest(xs, wrong)
	if err != nil {
		t.Fatal(err)
	}
	if r.D < 0.2 {
		t.Errorf("D = %v, want a large distance for a wrong exponent", r.D)
	}
	if r.P > 1e-6 {
		t.Errorf("P = %v, want a decisive rejection", r.P)
	}
}

func TestKSTestSeededSample(t *testing.T) {
	d := mustNew(t, -2.5, 2, inf)
	d.Src = rand.NewSource(7)
	xs, err := d.Sample(5000)
	if err != nil {
		t.Fatal(err)
	}
	r, err := KSTest(xs, d)
	if err != nil {
		t.Fatal(err)
	}
	if r.D > 0.03 {
		t.Errorf("D = %v, want below 0.03 for a true-null sample", r.D)
	}
	if r.P < 0.001 {
		t.Errorf("P = %v, want no rejection of the true distribution", r.P)
	}
}

func TestKSTestEmpty(t *testing.T) {
	d := mustNew(t, -2, 1, 100)
	if _, err := KSTest(nil, d); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("err = %v, want ErrInvalidParam", err)
	}
}
