// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

// A Dist is a continuous statistical distribution with known support.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. It is 0 below the
	// support and 1 above it; for distributions with unbounded
	// upper support it is defined as the limit, so CDF(+Inf) = 1.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for u. That is,
	// InvCDF(CDF(x)) = x. The value of u must be in [0, 1];
	// outside that range InvCDF returns NaN.
	InvCDF(u float64) float64

	// InvCDFEach returns InvCDF(us[i]) for each i.
	InvCDFEach(us []float64) []float64

	// Support returns the interval on which the PDF is non-zero.
	// The upper bound may be +Inf.
	Support() (lo, hi float64)
}
