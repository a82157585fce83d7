// Copyright 2024 The BPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package powerlaw analyzes bounded power-law distributed random
// variables.
//
// A bounded power law (BPL) has probability density proportional to
// x^alpha on a support [Xmin, Xmax], where Xmax may be +Inf when
// alpha < -1. The package provides inverse-transform sampling,
// logarithmically binned histogram estimation, closed-form PDF and
// CDF evaluation, and a one-sample Kolmogorov-Smirnov test. All three
// estimation paths share a single normalization convention, so the
// same parameters fed to the sampler, the histogram, and the
// theoretical curves describe the same distribution.
package powerlaw // import "github.com/bedartha/bpl/powerlaw"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

// ErrInvalidParam reports a parameter outside its domain, such as a
// non-positive lower bound or an exponent that is not normalizable on
// an unbounded support. Errors returned by this package wrap it, so
// callers can test with errors.Is.
var ErrInvalidParam = errors.New("invalid parameter")
