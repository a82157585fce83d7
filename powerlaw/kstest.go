// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"fmt"
	"math"
	"sort"
)

// A KSTestResult is the result of a one-sample Kolmogorov-Smirnov
// test.
type KSTestResult struct {
	// N is the sample size.
	N int

	// D is the test statistic: the supremum distance between the
	// empirical CDF of the sample and the hypothesized CDF.
	D float64

	// P is the p-value for the null hypothesis that the sample
	// was drawn from the hypothesized distribution. Small values
	// argue against the null.
	P float64
}

// KSTest performs a one-sample Kolmogorov-Smirnov test of the null
// hypothesis that xs was drawn from dist.
//
// The p-value uses the asymptotic distribution of the statistic with
// the finite-sample correction of Stephens (1970), which is accurate
// to a few percent for sample sizes above roughly 10. The parameters
// of dist must not have been fitted to xs; fitted parameters bias D
// low and the p-value high.
//
// It returns an error wrapping ErrInvalidParam if xs is empty.
func KSTest(xs []float64, dist Dist) (KSTestResult, error) {
	if len(xs) == 0 {
		return KSTestResult{}, fmt.Errorf("%w: empty sample", ErrInvalidParam)
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	d := 0.0
	for i, x := range sorted {
		f := dist.CDF(x)
		// The empirical CDF steps from i/n to (i+1)/n at x, so
		// the distance must be checked on both sides of the
		// step.
		if above := float64(i+1)/n - f; above > d {
			d = above
		}
		if below := f - float64(i)/n; below > d {
			d = below
		}
	}

	sn := math.Sqrt(n)
	p := KolmogorovP((sn + 0.12 + 0.11/sn) * d)
	return KSTestResult{N: len(xs), D: d, P: p}, nil
}

// KolmogorovP returns the tail probability Pr[K > lambda] of the
// Kolmogorov distribution,
//
//	Q(λ) = 2 Σ_{k=1}^∞ (-1)^(k-1) exp(-2 k² λ²)
//
// which is the asymptotic null distribution of √n·D.
func KolmogorovP(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	a2 := -2 * lambda * lambda
	sum, fac, prev := 0.0, 2.0, 0.0
	for k := 1; k <= 100; k++ {
		term := fac * math.Exp(a2*float64(k)*float64(k))
		sum += term
		if math.Abs(term) <= 1e-3*prev || math.Abs(term) <= 1e-8*sum {
			if sum < 0 {
				return 0
			}
			if sum > 1 {
				return 1
			}
			return sum
		}
		fac = -fac
		prev = math.Abs(term)
	}
	// The series converges too slowly for very small lambda, where
	// the tail probability is 1 to within any useful precision.
	return 1
}
