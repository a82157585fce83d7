// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// BoundedPowerLaw is a continuous power-law distribution on
// [Xmin, Xmax] with density C·x^Alpha.
//
// Alpha is applied directly as the exponent, so the familiar decaying
// power laws have negative Alpha (an exponent often quoted as
// "alpha = 2.5" corresponds to Alpha = -2.5 here). Xmin must be
// positive. Xmax may be +Inf, in which case Alpha must be less than
// -1 for the density to be normalizable.
//
// The derivation of the density, the distribution function, and its
// inverse follows Clauset, Shalizi, Newman, "Power-law Distributions
// in Empirical Data", SIAM Review 51, 661-703 (2009), sec. II B,
// extended to a finite upper cutoff.
type BoundedPowerLaw struct {
	// Alpha is the power-law exponent.
	Alpha float64

	// Xmin and Xmax bound the support. Xmin > 0; Xmax > Xmin or
	// +Inf for a distribution bounded only from below.
	Xmin, Xmax float64

	// Src is the source of uniform random numbers consumed by
	// Rand and Sample. If Src is nil, the global source of the
	// rand package is used.
	Src rand.Source
}

// New returns a bounded power-law distribution with density
// proportional to x^alpha on [xmin, xmax]. Pass math.Inf(1) as xmax
// for a distribution bounded only from below.
//
// It returns an error wrapping ErrInvalidParam if xmin is not
// positive, xmax does not exceed xmin, or the distribution is not
// normalizable (xmax = +Inf with alpha >= -1).
func New(alpha, xmin, xmax float64) (BoundedPowerLaw, error) {
	d := BoundedPowerLaw{Alpha: alpha, Xmin: xmin, Xmax: xmax}
	if err := d.validate(); err != nil {
		return BoundedPowerLaw{}, err
	}
	return d, nil
}

func (d BoundedPowerLaw) validate() error {
	if math.IsNaN(d.Alpha) {
		return fmt.Errorf("%w: alpha is NaN", ErrInvalidParam)
	}
	if !(d.Xmin > 0) || math.IsInf(d.Xmin, 1) {
		return fmt.Errorf("%w: xmin = %v, must be positive and finite", ErrInvalidParam, d.Xmin)
	}
	if math.IsInf(d.Xmax, 1) {
		if d.Alpha >= -1 {
			return fmt.Errorf("%w: alpha = %v is not normalizable on [%v, +Inf), need alpha < -1", ErrInvalidParam, d.Alpha, d.Xmin)
		}
		return nil
	}
	if !(d.Xmax > d.Xmin) {
		return fmt.Errorf("%w: xmax = %v, must exceed xmin = %v", ErrInvalidParam, d.Xmax, d.Xmin)
	}
	return nil
}

// normConst returns the constant C such that C·x^Alpha integrates to
// 1 over [Xmin, Xmax]. This is the one place the normalization is
// computed; the sampler, the evaluators, and the moments all go
// through it. The unbounded case is an explicit branch rather than a
// limit of the bounded formula, so no Inf arithmetic is involved.
func (d BoundedPowerLaw) normConst() float64 {
	b := d.Alpha + 1
	if math.IsInf(d.Xmax, 1) {
		// validate guarantees b < 0 here.
		return -b * math.Pow(d.Xmin, -b)
	}
	if b == 0 {
		return 1 / math.Log(d.Xmax/d.Xmin)
	}
	return b / (math.Pow(d.Xmax, b) - math.Pow(d.Xmin, b))
}

// PDF returns the probability density C·x^Alpha at x, or 0 for x
// outside [Xmin, Xmax].
func (d BoundedPowerLaw) PDF(x float64) float64 {
	if x < d.Xmin || x > d.Xmax || math.IsInf(x, 1) {
		return 0
	}
	return d.normConst() * math.Pow(x, d.Alpha)
}

// PDFEach returns PDF(xs[i]) for each i.
func (d BoundedPowerLaw) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	c := d.normConst()
	for i, x := range xs {
		if x < d.Xmin || x > d.Xmax || math.IsInf(x, 1) {
			continue
		}
		res[i] = c * math.Pow(x, d.Alpha)
	}
	return res
}

// CDF returns the cumulative probability Pr[X <= x]. It is 0 for
// x <= Xmin and 1 for x >= Xmax; when Xmax is +Inf it approaches 1
// in the limit and CDF(+Inf) returns exactly 1.
func (d BoundedPowerLaw) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= d.Xmin {
		return 0
	}
	b := d.Alpha + 1
	if math.IsInf(d.Xmax, 1) {
		if math.IsInf(x, 1) {
			return 1
		}
		return 1 - math.Pow(x/d.Xmin, b)
	}
	if x >= d.Xmax {
		return 1
	}
	if b == 0 {
		return math.Log(x/d.Xmin) / math.Log(d.Xmax/d.Xmin)
	}
	return (math.Pow(x, b) - math.Pow(d.Xmin, b)) / (math.Pow(d.Xmax, b) - math.Pow(d.Xmin, b))
}

// CDFEach returns CDF(xs[i]) for each i.
func (d BoundedPowerLaw) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// InvCDF returns the x such that CDF(x) = u, for u in [0, 1]. For u
// outside [0, 1] it returns NaN. When Xmax is +Inf, InvCDF(1)
// returns +Inf.
func (d BoundedPowerLaw) InvCDF(u float64) float64 {
	if u < 0 || u > 1 || math.IsNaN(u) {
		return nan
	}
	b := d.Alpha + 1
	if math.IsInf(d.Xmax, 1) {
		if u == 1 {
			return inf
		}
		return d.Xmin * math.Pow(1-u, 1/b)
	}
	if b == 0 {
		return d.Xmin * math.Pow(d.Xmax/d.Xmin, u)
	}
	pmin := math.Pow(d.Xmin, b)
	pmax := math.Pow(d.Xmax, b)
	return math.Pow(pmin+u*(pmax-pmin), 1/b)
}

// InvCDFEach returns InvCDF(us[i]) for each i.
func (d BoundedPowerLaw) InvCDFEach(us []float64) []float64 {
	res := make([]float64, len(us))
	for i, u := range us {
		res[i] = d.InvCDF(u)
	}
	return res
}

// Support returns Xmin and Xmax.
func (d BoundedPowerLaw) Support() (lo, hi float64) {
	return d.Xmin, d.Xmax
}

// Rand returns one random deviate by applying InvCDF to a uniform
// draw from Src. It does not validate the parameters; use New or
// Sample for checked construction.
func (d BoundedPowerLaw) Rand() float64 {
	var u float64
	if d.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(d.Src).Float64()
	}
	return d.InvCDF(u)
}

// Sample returns n independent draws from the distribution. Every
// value lies in [Xmin, Xmax]; for the unbounded family values lie in
// [Xmin, +Inf) but are always finite since the uniform draws are in
// [0, 1).
//
// With a fixed, seeded Src the output sequence is reproducible.
func (d BoundedPowerLaw) Sample(n int) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample size n = %d, must be positive", ErrInvalidParam, n)
	}
	next := rand.Float64
	if d.Src != nil {
		next = rand.New(d.Src).Float64
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.InvCDF(next())
	}
	return xs, nil
}

// Mean returns the expected value of the distribution, or +Inf when
// the tail is too heavy for the mean to exist (unbounded support with
// Alpha >= -2).
func (d BoundedPowerLaw) Mean() float64 {
	return d.moment(1)
}

// Variance returns the variance of the distribution, or +Inf when the
// second moment diverges (unbounded support with Alpha >= -3).
func (d BoundedPowerLaw) Variance() float64 {
	m := d.moment(1)
	if math.IsInf(m, 1) {
		return inf
	}
	m2 := d.moment(2)
	if math.IsInf(m2, 1) {
		return inf
	}
	return m2 - m*m
}

// moment returns E[X^k].
func (d BoundedPowerLaw) moment(k float64) float64 {
	c := d.normConst()
	p := d.Alpha + k + 1
	if math.IsInf(d.Xmax, 1) {
		if p >= 0 {
			return inf
		}
		return -c * math.Pow(d.Xmin, p) / p
	}
	if p == 0 {
		return c * math.Log(d.Xmax/d.Xmin)
	}
	return c * (math.Pow(d.Xmax, p) - math.Pow(d.Xmin, p)) / p
}

// Sample returns n independent draws from the bounded power law with
// density proportional to x^alpha on [xmin, xmax], using uniform
// variates from src (the global source if src is nil). Pass
// math.Inf(1) as xmax for a distribution bounded only from below.
func Sample(alpha, xmin, xmax float64, n int, src rand.Source) ([]float64, error) {
	d, err := New(alpha, xmin, xmax)
	if err != nil {
		return nil, err
	}
	d.Src = src
	return d.Sample(n)
}

// PDF evaluates the bounded power-law density at each point of xs.
// The result is aligned with xs; points outside [xmin, xmax] map
// to 0.
func PDF(xs []float64, alpha, xmin, xmax float64) ([]float64, error) {
	d, err := New(alpha, xmin, xmax)
	if err != nil {
		return nil, err
	}
	return d.PDFEach(xs), nil
}

// CDF evaluates the bounded power-law distribution function at each
// point of xs. The result is aligned with xs; points below xmin map
// to 0 and points above xmax to 1.
func CDF(xs []float64, alpha, xmin, xmax float64) ([]float64, error) {
	d, err := New(alpha, xmin, xmax)
	if err != nil {
		return nil, err
	}
	return d.CDFEach(xs), nil
}
