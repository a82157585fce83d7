// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// LogHist represents options for constructing a logarithmically
// binned histogram.
//
// Logarithmic (geometric) binning keeps the relative bin width
// constant, which is the appropriate choice for heavy-tailed data
// spanning many orders of magnitude: on a log-log plot the bins
// appear equally wide.
//
// The default (zero) value of LogHist is a reasonable configuration:
// the bin count comes from Sturges' rule and the range from the
// sample itself. To estimate a histogram, create an instance of
// LogHist and use the From method to provide data.
type LogHist struct {
	// Bins is the number of bins. If it is zero, Sturges' rule
	// ceil(log2(n)) + 1 is applied to the sample size n.
	Bins int

	// Min and Max bound the binned range. A zero Min defaults to
	// the smallest positive sample value and a zero Max to the
	// largest sample value. Min must be positive when set.
	// Samples outside [Min, Max] are dropped and do not
	// contribute to the density normalization.
	Min, Max float64

	// Edges, if non-nil, are explicit bin edges and override Bins,
	// Min, and Max. They must be strictly increasing, at least
	// two, and start above zero.
	Edges []float64
}

// A Histogram is an ordered sequence of bins estimated from a sample.
// Bin i spans the half-open interval [Edges[i], Edges[i+1]); the last
// bin is closed on the right so the maximum value lands in it. A
// sample exactly on an interior edge belongs to the bin on its right.
type Histogram struct {
	// Edges are the len(Counts)+1 strictly increasing bin edges.
	Edges []float64

	// Counts[i] is the number of samples assigned to bin i. Bins
	// that received no samples are present with a zero count.
	Counts []int

	// Densities[i] is Counts[i] / (N * width of bin i), so the
	// densities integrate to 1 over the binned range.
	Densities []float64

	// N is the number of samples that fell inside the binned
	// range.
	N int
}

// From returns the logarithmically binned histogram of the sample xs.
//
// It returns an error wrapping ErrInvalidParam if xs is empty, the
// configured bin count is negative, the range lower bound is not
// positive, or explicit edges are malformed.
func (h LogHist) From(xs []float64) (*Histogram, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidParam)
	}
	edges, err := h.edges(xs)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(edges)-1)
	n := 0
	for _, x := range xs {
		i := findBin(edges, x)
		if i < 0 {
			continue
		}
		counts[i]++
		n++
	}

	densities := make([]float64, len(counts))
	if n > 0 {
		for i, c := range counts {
			width := edges[i+1] - edges[i]
			densities[i] = float64(c) / (float64(n) * width)
		}
	}
	return &Histogram{Edges: edges, Counts: counts, Densities: densities, N: n}, nil
}

func (h LogHist) edges(xs []float64) ([]float64, error) {
	if h.Edges != nil {
		if len(h.Edges) < 2 {
			return nil, fmt.Errorf("%w: need at least two bin edges, got %d", ErrInvalidParam, len(h.Edges))
		}
		if !(h.Edges[0] > 0) {
			return nil, fmt.Errorf("%w: bin edges start at %v, must be positive", ErrInvalidParam, h.Edges[0])
		}
		for i := 1; i < len(h.Edges); i++ {
			if !(h.Edges[i] > h.Edges[i-1]) {
				return nil, fmt.Errorf("%w: bin edges must be strictly increasing", ErrInvalidParam)
			}
		}
		return h.Edges, nil
	}

	if h.Bins < 0 {
		return nil, fmt.Errorf("%w: bin count = %d, must not be negative", ErrInvalidParam, h.Bins)
	}
	bins := h.Bins
	if bins == 0 {
		bins = SturgesBins(len(xs))
	}

	lo, hi := h.Min, h.Max
	if lo == 0 || hi == 0 {
		slo, shi := sampleRange(xs)
		if lo == 0 {
			lo = slo
		}
		if hi == 0 {
			hi = shi
		}
	}
	if !(lo > 0) {
		return nil, fmt.Errorf("%w: range minimum = %v, must be positive", ErrInvalidParam, lo)
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: range maximum = %v, must exceed minimum = %v", ErrInvalidParam, hi, lo)
	}
	return LogSpan(lo, hi, bins+1), nil
}

// findBin returns the index of the bin containing x, or -1 if x lies
// outside the edges.
func findBin(edges []float64, x float64) int {
	last := edges[len(edges)-1]
	if x < edges[0] || x > last || math.IsNaN(x) {
		return -1
	}
	if x == last {
		return len(edges) - 2
	}
	// Smallest i with edges[i] >= x. If x sits exactly on an
	// edge, it opens bin i; otherwise it falls in bin i-1.
	i := sort.SearchFloat64s(edges, x)
	if edges[i] == x {
		return i
	}
	return i - 1
}

// sampleRange returns the smallest positive value and the largest
// value of xs. If xs has no positive value, lo is 0 and the caller's
// range validation rejects it.
func sampleRange(xs []float64) (lo, hi float64) {
	hi = math.Inf(-1)
	lo = 0
	for _, x := range xs {
		if x > hi {
			hi = x
		}
		if x > 0 && (lo == 0 || x < lo) {
			lo = x
		}
	}
	return lo, hi
}

// SturgesBins returns the bin count given by Sturges' rule,
// ceil(log2(n)) + 1, for a sample of size n.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Widths returns the width of each bin.
func (h *Histogram) Widths() []float64 {
	ws := make([]float64, len(h.Counts))
	for i := range ws {
		ws[i] = h.Edges[i+1] - h.Edges[i]
	}
	return ws
}

// Centers returns the geometric midpoint of each bin, the natural
// abscissa for log-binned data on a log-log plot.
func (h *Histogram) Centers() []float64 {
	cs := make([]float64, len(h.Counts))
	for i := range cs {
		cs[i] = math.Sqrt(h.Edges[i] * h.Edges[i+1])
	}
	return cs
}

// LogSpan returns n points spaced evenly in log space from lo to hi,
// inclusive of both endpoints. lo and hi must be positive and n at
// least 2.
func LogSpan(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}
