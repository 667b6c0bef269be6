// Package harness benchmarks sweep.Evaluate under its execution
// policies. Durations are measured around whole Evaluate calls; one
// evaluation is one trial, and a bounded FIFO window keeps the most
// recent samples for the rolling mean.
package harness

import (
	"errors"
	"time"

	"github.com/eapache/queue"

	"github.com/katalvlaran/fractal/grid"
	"github.com/katalvlaran/fractal/sweep"
)

// Sentinel errors for harness options.
var (
	// ErrTrials indicates a non-positive trial count.
	ErrTrials = errors.New("harness: trial count must be positive")
	// ErrWindow indicates a non-positive rolling window size.
	ErrWindow = errors.New("harness: window size must be positive")
)

// Default option values; DefaultOptions is the single source of truth.
const (
	// DefaultTrials is the number of timed evaluations per Run.
	DefaultTrials = 5
	// DefaultWindow is the number of recent trials feeding RollingMean.
	DefaultWindow = 3
)

// Options configures a harness run.
type Options struct {
	// Trials is the number of timed Evaluate calls. At least 1.
	Trials int
	// Window bounds the rolling sample FIFO for RollingMean. At least 1;
	// a window larger than Trials simply covers every trial.
	Window int
}

// DefaultOptions returns Options{Trials: DefaultTrials, Window: DefaultWindow}.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Window: DefaultWindow}
}

// Report summarizes the timing of one Run.
type Report struct {
	// Policy echoes the policy the trials ran under.
	Policy sweep.Policy
	// Trials is the number of timed evaluations taken.
	Trials int

	// Min, Max, Mean and Total aggregate all trial durations.
	Min, Max, Mean, Total time.Duration
	// RollingMean averages only the most recent Window trials, damping
	// warm-up noise from the first evaluations.
	RollingMean time.Duration

	// Iterations is the sum of every cell's escape count in the last
	// produced grid. Identical inputs must reproduce it exactly, which
	// makes it a cheap cross-policy checksum.
	Iterations int64
}

// Run times opts.Trials calls of sweep.Evaluate(cfg, b) and aggregates
// the wall-clock durations. The produced grids are discarded except for
// the iteration checksum of the last one.
//
// Returns ErrTrials or ErrWindow for bad options; configuration errors
// from sweep.Evaluate propagate unchanged.
//
// Complexity: O(Trials × cost of one evaluation).
func Run(cfg sweep.Config, b grid.Bounds, opts Options) (Report, error) {
	if opts.Trials < 1 {
		return Report{}, ErrTrials
	}
	if opts.Window < 1 {
		return Report{}, ErrWindow
	}

	rep := Report{Policy: cfg.Policy, Trials: opts.Trials}
	window := queue.New()

	var last *grid.Grid
	for trial := 0; trial < opts.Trials; trial++ {
		start := time.Now()
		g, err := sweep.Evaluate(cfg, b)
		elapsed := time.Since(start)
		if err != nil {
			return Report{}, err
		}
		last = g

		rep.Total += elapsed
		if trial == 0 || elapsed < rep.Min {
			rep.Min = elapsed
		}
		if elapsed > rep.Max {
			rep.Max = elapsed
		}

		window.Add(elapsed)
		if window.Length() > opts.Window {
			window.Remove() // drop the oldest sample
		}
	}

	rep.Mean = rep.Total / time.Duration(opts.Trials)
	rep.RollingMean = rollingMean(window)
	rep.Iterations = sumIterations(last)

	return rep, nil
}

// Comparison pairs Sequential and Parallel reports for one configuration.
type Comparison struct {
	Sequential Report
	Parallel   Report

	// Speedup is Sequential.Mean / Parallel.Mean; values above 1 mean
	// the parallel policy won.
	Speedup float64
}

// Compare runs the same configuration under both policies and reports
// the mean-time speedup. Worker count and lane width are taken from cfg
// as given; only the policy field differs between the two runs.
//
// Complexity: O(2 × Trials × cost of one evaluation).
func Compare(cfg sweep.Config, b grid.Bounds, opts Options) (Comparison, error) {
	seqCfg := cfg
	seqCfg.Policy = sweep.Sequential
	seq, err := Run(seqCfg, b, opts)
	if err != nil {
		return Comparison{}, err
	}

	parCfg := cfg
	parCfg.Policy = sweep.Parallel
	par, err := Run(parCfg, b, opts)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{Sequential: seq, Parallel: par}
	if par.Mean > 0 {
		cmp.Speedup = float64(seq.Mean) / float64(par.Mean)
	}

	return cmp, nil
}

// rollingMean averages the durations currently held in the FIFO window.
func rollingMean(window *queue.Queue) time.Duration {
	n := window.Length()
	if n == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < n; i++ {
		total += window.Get(i).(time.Duration)
	}

	return total / time.Duration(n)
}

// sumIterations totals every cell of a completed grid.
func sumIterations(g *grid.Grid) int64 {
	var sum int64
	for _, count := range g.Cells() {
		sum += int64(count)
	}

	return sum
}
