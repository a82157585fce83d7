// bpl draws random deviates from a bounded power-law distribution and
// prints them, their log-binned histogram, or the theoretical PDF/CDF
// curves as columns on stdout.
//
// Usage:
//
//	bpl [flags] [sample|hist|pdf|cdf]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/bedartha/bpl/powerlaw"
	"github.com/lmittmann/tint"
	"golang.org/x/exp/rand"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

	alpha := flag.Float64("alpha", -2.5, "power-law exponent (negative for a decaying tail)")
	xmin := flag.Float64("xmin", 1, "lower bound of the support (> 0)")
	xmax := flag.Float64("xmax", 0, "upper bound of the support (0 for unbounded)")
	n := flag.Int("n", 1000, "number of random deviates")
	bins := flag.Int("bins", 0, "histogram bin count (0 applies Sturges' rule)")
	points := flag.Int("points", 100, "number of log-spaced evaluation points for pdf/cdf")
	seed := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	mode := flag.Arg(0)
	if mode == "" {
		mode = "sample"
	}

	hi := *xmax
	if hi == 0 {
		hi = math.Inf(1)
	}
	dist, err := powerlaw.New(*alpha, *xmin, hi)
	if err != nil {
		log.Error("bad distribution parameters", "err", err)
		os.Exit(1)
	}
	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	dist.Src = rand.NewSource(s)

	switch mode {
	case "sample":
		xs, err := dist.Sample(*n)
		if err != nil {
			log.Error("sampling failed", "err", err)
			os.Exit(1)
		}
		for _, x := range xs {
			fmt.Printf("%g\n", x)
		}

	case "hist":
		xs, err := dist.Sample(*n)
		if err != nil {
			log.Error("sampling failed", "err", err)
			os.Exit(1)
		}
		h, err := powerlaw.LogHist{Bins: *bins}.From(xs)
		if err != nil {
			log.Error("histogram failed", "err", err)
			os.Exit(1)
		}
		for i, c := range h.Counts {
			fmt.Printf("%g %g %d %g\n", h.Edges[i], h.Edges[i+1], c, h.Densities[i])
		}
		log.Info("histogram", "bins", len(h.Counts), "counted", h.N, "dropped", len(xs)-h.N)

	case "pdf", "cdf":
		lo, gridHi := dist.Support()
		if math.IsInf(gridHi, 1) {
			// Cover all but the last 0.1% of the mass.
			gridHi = dist.InvCDF(0.999)
		}
		xs := powerlaw.LogSpan(lo, gridHi, *points)
		ys := dist.PDFEach(xs)
		if mode == "cdf" {
			ys = dist.CDFEach(xs)
		}
		for i, x := range xs {
			fmt.Printf("%g %g\n", x, ys[i])
		}

	default:
		log.Error("unknown mode", "mode", mode)
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [sample|hist|pdf|cdf]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
}
